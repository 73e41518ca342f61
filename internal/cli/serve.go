package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/handler"
	"github.com/gymsplit/notification-scheduler/internal/health"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the submission HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := newStack(ctx, "gymsplit-serve")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := config.ValidateForServe(st.cfg); err != nil {
				return err
			}

			return runServer(ctx, st)
		},
	}
}

func runServer(ctx context.Context, st *stack) error {
	secret := st.cfg.Links.SigningSecret

	submitHandler := handler.NewSubmitHandler(st.activity, st.schedules, secret, st.metrics)
	customPlanHandler := handler.NewCustomPlanHandler(st.activity, secret, st.metrics)
	deleteHandler := handler.NewDeleteHandler(st.activity, secret, st.metrics)
	checker := health.NewChecker(st.redis, st.cfg.DataDir, rootCmd.Version)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health/live", checker.LiveHandler())
	r.GET("/health/ready", checker.ReadyHandler())
	r.GET("/health", checker.ReadyHandler())

	r.GET("/submit", submitHandler.HandleSubmit)
	r.GET("/delete", deleteHandler.HandleDelete)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/custom-plan", customPlanHandler.HandleCustomPlan)
	}

	srv := &http.Server{
		Addr:              ":" + st.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		printError("server error: %v", err)
		return err
	case sig := <-quit:
		slog.InfoContext(ctx, "shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	printSuccess("server stopped")
	return nil
}
