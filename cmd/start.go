/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/arya-analytics/wall/pkg/audit"
	"github.com/arya-analytics/wall/pkg/auth"
	authfiber "github.com/arya-analytics/wall/pkg/auth/fiber"
	"github.com/arya-analytics/wall/pkg/password"
	"github.com/arya-analytics/wall/pkg/storage"
	"github.com/arya-analytics/wall/pkg/token"
	"github.com/arya-analytics/wall/pkg/wall"
	wallfiber "github.com/arya-analytics/wall/pkg/wall/fiber"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a wall node",
	Long: `Start a wall node serving the session and authentication APIs on
the configured listen address.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		logger, err := configureLogging()
		if err != nil {
			return err
		}

		sigC := make(chan os.Signal, 1)
		signal.Notify(sigC, os.Interrupt)

		// Set up the storage backend.
		store, err := storage.Open(newStorageConfig(logger))
		if err != nil {
			return err
		}
		defer func() {
			err = errors.CombineErrors(err, store.Close())
		}()

		// Set up the authentication services and seed the bootstrap
		// credentials.
		authenticator := &auth.KV{DB: store.KV}
		if err := registerBootstrap(authenticator, logger); err != nil {
			return err
		}
		tokens := &token.Service{
			Secret:     []byte(viper.GetString("secret")),
			Expiration: viper.GetDuration("token-expiration"),
		}

		// Bind our
		//		Authentication Services
		//		Session Services
		// To our fiber server, guarding the session routes with the token
		// middleware.
		app := fiber.New()
		(&authfiber.Service{Token: tokens, Auth: authenticator}).BindTo(app)
		protected := app.Group("/wall")
		protected.Use(authfiber.TokenMiddleware(tokens))
		(&wallfiber.Service{
			Registry: wall.NewRegistry(),
			Audit:    audit.NewKV(store.KV),
			Logger:   logger.Named("wall"),
		}).BindTo(protected)

		errC := make(chan error, 1)
		go func() { errC <- app.Listen(viper.GetString("listen-address")) }()
		logger.Info("started", zap.String("listen-address", viper.GetString("listen-address")))

		select {
		case err = <-errC:
			return err
		case <-sigC:
			return app.Shutdown()
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringP(
		"listen-address",
		"l",
		"127.0.0.1:9090",
		`Address the HTTP server listens on.`,
	)

	startCmd.Flags().StringP(
		"data",
		"d",
		"wall-data",
		`Dirname where the node will store its data.`,
	)

	startCmd.Flags().Bool(
		"mem",
		false,
		`Use a memory-backed file system for storage.`,
	)

	startCmd.Flags().Bool(
		"debug",
		false,
		`Enable development logging.`,
	)

	startCmd.Flags().String(
		"secret",
		"",
		`Secret used to sign authentication tokens.`,
	)

	startCmd.Flags().Duration(
		"token-expiration",
		24*time.Hour,
		`Lifetime of issued authentication tokens.`,
	)

	startCmd.Flags().String(
		"username",
		"wall",
		`Username of the bootstrap entity.`,
	)

	startCmd.Flags().String(
		"password",
		"",
		`Password of the bootstrap entity.`,
	)

	if err := viper.BindPFlags(startCmd.Flags()); err != nil {
		panic(err)
	}
}

func newStorageConfig(logger *zap.Logger) storage.Config {
	return storage.Config{
		MemBacked: viper.GetBool("mem"),
		Dirname:   viper.GetString("data"),
		Logger:    logger.Named("storage"),
	}
}

func configureLogging() (*zap.Logger, error) {
	if viper.GetBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func registerBootstrap(authenticator auth.Authenticator, logger *zap.Logger) error {
	creds := auth.InsecureCredentials{
		Username: viper.GetString("username"),
		Password: password.Raw(viper.GetString("password")),
	}
	_, err := authenticator.Register(creds)
	if errors.Is(err, auth.UniqueViolation) {
		return nil
	}
	if err == nil {
		logger.Info("registered bootstrap entity", zap.String("username", creds.Username))
	}
	return err
}
