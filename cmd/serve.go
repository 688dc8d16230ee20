package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"networth/core/loader"
	"networth/core/logger"
	"networth/core/middleware/auth"
	"networth/core/middleware/rayid"
	"networth/feature/integrity"
	"networth/feature/integrity/checks"
	"networth/feature/market"
	"networth/feature/networth"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "networth/docs/swagger"
)

// @title Networth API
// @version 1.0
// @description API for valuing player assets from market data.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the valuation server",
	Long:  `Loads reference and market data, starts the HTTP server and keeps the market caches warm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()
		cfg, logg := rt.cfg, rt.logger
		zap.ReplaceGlobals(logg)

		if spec := cfg.Feed.WarmSchedule; spec != "" {
			warmer := market.NewWarmer(rt.bazaar, rt.auctions, feedTimeout(cfg.Feed.TimeoutSeconds), logg)
			if err := warmer.Schedule(spec); err != nil {
				return err
			}
			warmer.Start()
			defer warmer.Stop()
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager()
		mgr.Register(networth.NewFeature(rt.engine, logg))
		mgr.Register(integrity.NewFeature(rt.store, cfg.Storage.Bucket, cfg.Reference.Prefix, []checks.Feed{
			{Name: "bazaar", Cache: rt.bazaar, MaxAge: cfg.Feed.BazaarMaxAge},
			{Name: "auctions", Cache: rt.auctions, MaxAge: cfg.Feed.AuctionMaxAge},
		}, logg))

		// RayID first so every later log line can be traced
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.IsProtected() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Error("Server stopped", zap.Error(err))
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
