package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	echoapi "github.com/mwenda/classtrack/apps/api/echo"
	"github.com/mwenda/classtrack/core"
	"github.com/mwenda/classtrack/core/assignment"
	"github.com/mwenda/classtrack/core/user"
	"github.com/mwenda/classtrack/storage/database"
	sqliterepos "github.com/mwenda/classtrack/storage/database/sqlite"
)

func main() {
	conf, err := core.LoadConfig()
	errAndDie(nil, err)

	logger, err := core.NewLogger(conf.Debug)
	errAndDie(nil, err)
	defer func() { _ = logger.Sync() }()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(logger, err)
	defer func() { _ = db.Close() }()
	errAndDie(logger, database.Migrate(db))

	// set up services
	usrSvc := user.NewService(sqliterepos.NewUserRepository(db))
	asgSvc := assignment.NewService(sqliterepos.NewAssignmentRepository(db))

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Conf:          conf,
		Logger:        logger,
		UserSvc:       usrSvc,
		AssignmentSvc: asgSvc,
	})

	go func() {
		logger.Info("starting server", zap.String("address", conf.Address))
		if err := app.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func errAndDie(logger *zap.Logger, err error) {
	if err == nil {
		return
	}
	if logger != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	panic(err)
}
