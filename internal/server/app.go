// Package server initializes and runs the portal application. It wires
// configuration, logging, the in-process stores, and the HTTP API, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shazhupan/activity-portal/internal/filex"
	"github.com/shazhupan/activity-portal/internal/logging"
	"github.com/shazhupan/activity-portal/internal/server/activities"
	"github.com/shazhupan/activity-portal/internal/server/codes"
	"github.com/shazhupan/activity-portal/internal/server/config"
	"github.com/shazhupan/activity-portal/internal/server/httpapi"
	"github.com/shazhupan/activity-portal/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger()

	if _, err := filex.EnsureParentDir(cfg.ActivityFile); err != nil {
		return nil, fmt.Errorf("preparing activity storage: %w", err)
	}

	codeStore := codes.NewStore(cfg.CodeValidityDuration, codes.NewLogSender(logger))
	userService := users.NewService(users.NewInMemoryRepository())
	activityRepo := activities.NewFileRepository(cfg.ActivityFile, logger.With("module", "activities"))
	activityService := activities.NewService(activityRepo)

	httpServer := httpapi.NewServer(cfg, logger, codeStore, userService, activityService)

	return &App{config: cfg, logger: logger, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
