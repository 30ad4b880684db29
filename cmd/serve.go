package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/logger"
	"inventory-sync/feature/inventory/report"
	"inventory-sync/feature/inventory/store"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveDB string

// serveCmd starts the read-only report server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve inventory summaries over HTTP",
	Long: `Starts a read-only HTTP server exposing the Record Store's aggregate
view as JSON. Export bundles never move over this surface; synchronization
stays filesystem-based.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if serveDB != "" {
			cfg.Database.Driver = database.DriverSQLite
			cfg.Database.Path = serveDB
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		// 3. Open the store
		st, err := store.Open(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to open store", zap.Error(err))
		}
		defer st.Close()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Logging middleware
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequest(logg, c)
			l.Info("Request started")
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Optional API key protection
		if cfg.Server.ApiKey != "" {
			app.Use(func(c *fiber.Ctx) error {
				if c.Get("X-Api-Key") != cfg.Server.ApiKey {
					return c.SendStatus(fiber.StatusUnauthorized)
				}
				return c.Next()
			})
		}

		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Report routes
		svc := report.NewService(st.DB(), logg)
		report.NewHandler(svc, logg).RegisterRoutes(app)

		// 5. Start Server
		go func() {
			logg.Info("Starting report server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveDB, "db", "", "Store file to serve")
	RootCmd.AddCommand(serveCmd)
}
