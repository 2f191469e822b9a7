package fiber

import (
	"github.com/arya-analytics/wall/pkg/auth"
	"github.com/arya-analytics/wall/pkg/password"
	"github.com/arya-analytics/wall/pkg/token"
	"github.com/gofiber/fiber/v2"
)

type Service struct {
	Token *token.Service
	Auth  auth.Authenticator
}

func (s *Service) BindTo(parent fiber.Router) {
	router := parent.Group("/auth")
	router.Post("/login", s.login)
	router.Post("/register", s.register)
	protected := router.Group("/protected")
	protected.Use(TokenMiddleware(s.Token))
	protected.Post("/change-password", s.changePassword)
	protected.Post("/change-username", s.changeUsername)
}

func (s *Service) login(c *fiber.Ctx) error {
	var creds auth.InsecureCredentials
	if err := c.BodyParser(&creds); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	sc, err := s.Auth.Authenticate(creds)
	if err != nil {
		c.Status(fiber.StatusUnauthorized)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	c.Status(fiber.StatusOK)
	return s.tokenResponse(c, sc)
}

func (s *Service) register(c *fiber.Ctx) error {
	var creds auth.InsecureCredentials
	if err := c.BodyParser(&creds); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	sc, err := s.Auth.Register(creds)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	c.Status(fiber.StatusCreated)
	return s.tokenResponse(c, sc)
}

type changePasswordRequest struct {
	auth.InsecureCredentials
	NewPassword password.Raw `json:"newPassword"`
}

func (s *Service) changePassword(c *fiber.Ctx) error {
	var cpr changePasswordRequest
	if err := c.BodyParser(&cpr); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err := s.Auth.UpdatePassword(
		cpr.InsecureCredentials,
		cpr.NewPassword,
	); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

type changeUsernameRequest struct {
	auth.InsecureCredentials
	NewUsername string `json:"username"`
}

func (s *Service) changeUsername(c *fiber.Ctx) error {
	var cur changeUsernameRequest
	if err := c.BodyParser(&cur); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err := s.Auth.UpdateUsername(
		cur.InsecureCredentials,
		cur.NewUsername,
	); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

func (s *Service) tokenResponse(c *fiber.Ctx, sc auth.SecureCredentials) error {
	tk, err := s.Token.New(sc.Key)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"key": sc.Key, "username": sc.Username, "token": tk})
}
