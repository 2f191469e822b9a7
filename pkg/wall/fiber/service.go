// Package fiber exposes wall sessions over HTTP. Every route is a thin
// wrapper that parses a request, calls into the session, and formats the
// result; no policy logic lives here.
package fiber

import (
	"time"

	"github.com/arya-analytics/wall/pkg/audit"
	authfiber "github.com/arya-analytics/wall/pkg/auth/fiber"
	"github.com/arya-analytics/wall/pkg/wall"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Registry *wall.Registry
	Audit    audit.Store
	Logger   *zap.Logger
}

func (s *Service) BindTo(parent fiber.Router) {
	router := parent.Group("/sessions")
	router.Post("/", s.create)
	router.Delete("/:key", s.delete)
	router.Post("/:key/owners", s.setOwner)
	router.Post("/:key/conflicts", s.addConflict)
	router.Post("/:key/reset", s.reset)
	router.Post("/:key/read", s.read)
	router.Post("/:key/write", s.write)
	router.Get("/:key/subjects/:subject/objects", s.objectsAccessedBy)
	router.Get("/:key/objects/:object/subjects", s.subjectsThatAccessed)
	router.Get("/:key/firms/:firm/objects", s.objectsOwnedBy)
	router.Get("/:key/audit", s.trail)
}

type createRequest struct {
	Subjects int `json:"subjects"`
	Objects  int `json:"objects"`
	Firms    int `json:"firms"`
}

func (s *Service) create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if req.Subjects < 0 || req.Objects < 0 || req.Firms < 0 {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": "cardinalities must be non-negative"})
	}
	key, _ := s.Registry.Create(req.Subjects, req.Objects, req.Firms)
	s.Logger.Info("session created",
		zap.String("key", key.String()),
		zap.Int("subjects", req.Subjects),
		zap.Int("objects", req.Objects),
		zap.Int("firms", req.Firms),
	)
	c.Status(fiber.StatusCreated)
	return c.JSON(fiber.Map{"key": key})
}

func (s *Service) delete(c *fiber.Ctx) error {
	key, err := parseKey(c)
	if err != nil {
		return writeError(c, err)
	}
	s.Registry.Delete(key)
	c.Status(fiber.StatusNoContent)
	return nil
}

type setOwnerRequest struct {
	Object wall.Object `json:"object"`
	Firm   wall.Firm   `json:"firm"`
}

func (s *Service) setOwner(c *fiber.Ctx) error {
	sess, _, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var req setOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err := sess.SetOwner(req.Object, req.Firm); err != nil {
		return writeError(c, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

type addConflictRequest struct {
	FirmA wall.Firm `json:"firmA"`
	FirmB wall.Firm `json:"firmB"`
}

func (s *Service) addConflict(c *fiber.Ctx) error {
	sess, _, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var req addConflictRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err := sess.AddConflict(req.FirmA, req.FirmB); err != nil {
		return writeError(c, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

func (s *Service) reset(c *fiber.Ctx) error {
	sess, key, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	sess.Reset()
	s.Logger.Info("access histories cleared", zap.String("key", key.String()))
	c.Status(fiber.StatusNoContent)
	return nil
}

type decisionRequest struct {
	Subject wall.Subject `json:"subject"`
	Object  wall.Object  `json:"object"`
}

func (s *Service) read(c *fiber.Ctx) error {
	return s.decide(c, "read", func(sess *wall.Session, req decisionRequest) (wall.Decision, error) {
		return sess.Read(req.Subject, req.Object)
	})
}

func (s *Service) write(c *fiber.Ctx) error {
	return s.decide(c, "write", func(sess *wall.Session, req decisionRequest) (wall.Decision, error) {
		return sess.Write(req.Subject, req.Object)
	})
}

func (s *Service) decide(
	c *fiber.Ctx,
	op string,
	eval func(*wall.Session, decisionRequest) (wall.Decision, error),
) error {
	sess, key, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var req decisionRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	d, err := eval(sess, req)
	s.record(c, key, op, req, d, err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"decision": d.String()})
}

func (s *Service) record(
	c *fiber.Ctx,
	key uuid.UUID,
	op string,
	req decisionRequest,
	d wall.Decision,
	err error,
) {
	r := audit.Record{
		Session:  key,
		Op:       op,
		Subject:  req.Subject,
		Object:   req.Object,
		Decision: d,
		Time:     time.Now(),
	}
	if entity, ok := authfiber.GetSubject(c); ok {
		r.Entity = entity
	}
	if err != nil {
		r.Error = err.Error()
	}
	if err := s.Audit.Append(r); err != nil {
		s.Logger.Error("failed to append audit record", zap.Error(err))
	}
}

func (s *Service) objectsAccessedBy(c *fiber.Ctx) error {
	sess, _, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	subject, err := c.ParamsInt("subject")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	accessed, err := sess.ObjectsAccessedBy(wall.Subject(subject))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"objects": accessed})
}

func (s *Service) subjectsThatAccessed(c *fiber.Ctx) error {
	sess, _, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	object, err := c.ParamsInt("object")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	subjects, err := sess.SubjectsThatAccessed(wall.Object(object))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

func (s *Service) objectsOwnedBy(c *fiber.Ctx) error {
	sess, _, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	firm, err := c.ParamsInt("firm")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	objects, err := sess.ObjectsOwnedBy(wall.Firm(firm))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"objects": objects})
}

func (s *Service) trail(c *fiber.Ctx) error {
	_, key, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	records, err := s.Audit.RetrieveBySession(key)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"records": records})
}

// session resolves the session addressed by the :key route parameter. It
// returns the error unformatted; callers pass it to writeError.
func (s *Service) session(c *fiber.Ctx) (*wall.Session, uuid.UUID, error) {
	key, err := parseKey(c)
	if err != nil {
		return nil, key, err
	}
	sess, err := s.Registry.Retrieve(key)
	if err != nil {
		return nil, key, err
	}
	return sess, key, nil
}

// InvalidSessionKey is returned when the :key route parameter is not a
// parseable uuid.
var InvalidSessionKey = errors.New("[wall] - invalid session key")

func parseKey(c *fiber.Ctx) (uuid.UUID, error) {
	key, err := uuid.Parse(c.Params("key"))
	if err != nil {
		return key, errors.Wrap(InvalidSessionKey, err.Error())
	}
	return key, nil
}

// writeError is the single place a failed session operation becomes a
// response. It both sets the status and writes the JSON body, so handlers
// must return its result directly.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wall.NotFound):
		c.Status(fiber.StatusNotFound)
	case errors.Is(err, wall.OutOfRange), errors.Is(err, InvalidSessionKey):
		c.Status(fiber.StatusBadRequest)
	default:
		c.Status(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"error": err.Error()})
}
