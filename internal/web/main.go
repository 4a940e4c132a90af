package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	fiberlogger "github.com/dakotalock/holy-grail-app-1750546242/internal/logger/adapter/fiber"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/store"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web/handler"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web/handler/greeting"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web/handler/name"
)

// CheckAlivePath is the load balancer alive check route.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	store        *store.Store
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and store.
func New(cfg *config.Config, st *store.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "holy-grail",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		store: st,
	}
	service.alive.Store(true)

	// request id first so the access log can pick it up
	app.Use(RequestID)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config: cfg.Log,
		Next: func(c *fiber.Ctx) bool {
			return cfg.Log.DisableCheckAlive && c.Path() == CheckAlivePath
		},
	}))

	// fixed response headers, answers pre-flight requests with 204
	app.Use(FixedHeaders)

	// the store is (re-)initialized before every API request
	app.Use(handler.APIPrefix, service.initStore)

	// init handlers (they register their own routes)
	for _, h := range []handler.Service{&greeting.Handler, &name.Handler} {
		if err := h.Init(app, cfg, st); err != nil {
			log.Fatal().Err(err).Msg(handler.ErrNilACSFatalLogMsg)
		}
	}

	// alive check for load balancers, fails while draining
	app.Get(CheckAlivePath, service.checkAlive)

	// prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// serve the embedded single page client
	app.Use(handler.RootPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Index:      "index.html",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// everything unmatched gets the JSON not-found body
	app.Use(service.notFound)

	return service
}

// notFound is the catch-all handler for unmatched paths.
func (s *Service) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
}

// checkAlive reports whether the service accepts traffic.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "draining"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
