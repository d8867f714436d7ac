package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/khalil-js/VETANIMALIA/internal/cfg"
	v1Http "github.com/khalil-js/VETANIMALIA/internal/delivery/v1/http"
	catalogRepo "github.com/khalil-js/VETANIMALIA/internal/repository/catalog"
	memoryRepo "github.com/khalil-js/VETANIMALIA/internal/repository/memory"
	redisRepo "github.com/khalil-js/VETANIMALIA/internal/repository/redis"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/clients"
	"github.com/khalil-js/VETANIMALIA/pkg/closer"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/jitter"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second

	// Параметры повторных попыток подключения к Redis при старте.
	redisPingAttempts = 5
	redisPingBase     = 200 * time.Millisecond
	redisPingMax      = 3 * time.Second
)

// App собирает зависимости приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(shutdownTimeout)

	store, err := initSessionStore(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catRepo := catalogRepo.NewCatalogRepo()

	catalogUC := usecase.NewCatalogUC(catRepo, log)
	cartUC := usecase.NewCartUC(catRepo, store, log)
	checkoutUC := usecase.NewCheckoutUC(cartUC, store, cfg.Checkout.SubmitDelay, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, checkoutUC, cfg.Session)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// initSessionStore выбирает хранилище сессий по STORE_BACKEND.
// Redis — боевой вариант, memory — для локальной разработки без инфраструктуры.
func initSessionStore(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.SessionStore, error) {
	if cfg.Store.Backend == config.StoreBackendMemory {
		log.Warnf("using in-memory session store, data will not survive restarts")
		return memoryRepo.NewStoreRepo(), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)

	var err error
	for attempt := 0; attempt < redisPingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(pingCtx)
		cancel()
		if err == nil {
			break
		}

		delay := jitter.ExponentialBackoff(redisPingBase, redisPingMax, attempt, 0.2)
		log.Warnf("redis ping failed (attempt %d/%d), retrying in %s: %v",
			attempt+1, redisPingAttempts, delay, err)
		time.Sleep(delay)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewStoreRepo(redisClient, cfg.Redis, log), nil
}
