package webapp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/config"
	"github.com/meeplelog/meeplelog/internal/logging"
	"github.com/meeplelog/meeplelog/internal/querycache"
	"github.com/meeplelog/meeplelog/internal/viewmodel"
)

// App wires the whole web frontend: backend client, query cache, composer
// and the HTTP surface.
type App struct {
	config *config.Config
	logger logging.Logger
	echo   *echo.Echo
	memory *querycache.MemoryStore
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault(c.LogLevel)

	client := api.New(c.APIBaseURL, c.RequestTimeout)

	var store querycache.Store
	var memory *querycache.MemoryStore
	if c.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		store = querycache.NewRedisStore(rdb)
	} else {
		memory = querycache.NewMemoryStore()
		store = memory
	}

	cache := querycache.New(store, c.CacheTTL)
	composer := viewmodel.NewComposer(client, cache, logger)

	e := echo.New()
	e.HideBanner = true
	RegisterRoutes(e, NewHandler(composer, logger, c.Language))

	return &App{config: c, logger: logger, echo: e, memory: memory}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or a termination signal
// arrives, then shuts the HTTP server down gracefully.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app",
		"addr", app.config.ListenAddr, "env", app.config.Env, "backend", app.config.APIBaseURL)

	app.initSignalHandler(cancelFunc)

	if app.memory != nil {
		app.memory.StartJanitor(ctx, time.Minute)
	}

	go func() {
		if err := app.echo.Start(app.config.ListenAddr); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, "server stopped", "err", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown failed", "err", err)
	}
	app.logger.Info(shutdownCtx, "app stopped")
}
