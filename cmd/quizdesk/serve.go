package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/xxxsen/quizdesk/internal/config"
	"github.com/xxxsen/quizdesk/internal/handler"
	"github.com/xxxsen/quizdesk/internal/history"
	"github.com/xxxsen/quizdesk/internal/job"
	"github.com/xxxsen/quizdesk/internal/middleware"
	"github.com/xxxsen/quizdesk/internal/schedule"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the operator form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			initLogger(cfg, cfg.LogConfig.File == "")
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", opts.configPath))
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	logger := logutil.GetLogger(context.Background())
	logger.Info("starting console",
		zap.Int("port", cfg.Port),
		zap.String("base_url", cfg.BaseURL),
		zap.String("probe", cfg.Probe.Spec),
	)

	recorder := history.NewRecorder(cfg.History.Size, time.Duration(cfg.History.TTLSeconds)*time.Second)
	c, api := newConsole(cfg, recorder)

	deps := handler.RouterDeps{
		Page:    handler.NewPageHandler(c, cfg.BaseURL),
		Console: handler.NewConsoleHandler(c),
	}

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	engine, err := webapi.NewEngine(
		"/",
		addr,
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.AccessLog(),
			middleware.CORS(cfg.CORSAllowOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Probe.Spec != "" {
		scheduler := schedule.NewCronScheduler()
		if err := scheduler.AddJob(job.NewBackendProbeJob(api, c, 0), cfg.Probe.Spec); err != nil {
			return fmt.Errorf("schedule backend probe: %w", err)
		}
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()
	logger.Info("console listening", zap.String("addr", addr))

	<-ctx.Done()
	logger.Info("console stopping...")
	return nil
}
