// Package daemon wires the settings store and the web service together.
package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/store"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	st := store.New(cfg.Store)

	// Warm up the store once at boot. A failure is not fatal: the store is
	// ephemeral and every request re-runs the initialization anyway.
	if err := st.Initialize(); err != nil {
		log.Warn().Err(err).Msg("settings store warm-up failed")
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, st),
	}
}
