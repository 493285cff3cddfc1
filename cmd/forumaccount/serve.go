package main

import (
	"context"
	"errors"
	"forumaccount/internal/app"
	"forumaccount/internal/app/deps"
	"forumaccount/internal/app/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dl "forumaccount/internal/core/domain/logging"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, shutdownDeps := deps.InitDeps()
			services := services.InitServices(deps)

			httpServer := app.InitHttpServer(deps, services)
			go start(httpServer, deps)

			stopCh, closeCh := createChannel()
			defer closeCh()

			<-stopCh
			return shutdown(context.Background(), httpServer, deps, shutdownDeps)
		},
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("forumName", deps.Config.ForumName),
		dl.Entry("mailQueueBackend", deps.Config.MailQueueBackend),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
	shutDownDeps()
	return nil
}
