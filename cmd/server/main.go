package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/loanword-api/internal/config"
	"github.com/iliyamo/loanword-api/internal/database"
	"github.com/iliyamo/loanword-api/internal/handler"
	"github.com/iliyamo/loanword-api/internal/queue"
	"github.com/iliyamo/loanword-api/internal/repository"
	"github.com/iliyamo/loanword-api/internal/router"
	"github.com/iliyamo/loanword-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// The catalog store is picked at startup: a relational catalog when
	// DATABASE_URL is set, the built-in seed catalog otherwise.  A failed
	// database open is held onto instead of aborting; /v1/health stays up
	// and /v1/dbtest explains what is wrong.
	var (
		client  *database.Client
		initErr error
		masked  string
		store   repository.CatalogStore
	)
	if cfg.DatabaseURL == "" {
		store = repository.NewMemoryCatalog(nil)
		log.Info("DATABASE_URL not set, serving the built-in seed catalog")
	} else {
		if dsn, _, err := database.Normalize(cfg.DatabaseURL); err == nil {
			masked = database.MaskURL(dsn)
		}
		log.Infof("using DATABASE_URL: %s", masked)

		client, initErr = database.Open(cfg.DatabaseURL)
		if initErr != nil {
			log.WithError(initErr).Error("catalog database unavailable; deck generation will fail until it recovers")
		} else {
			defer client.Close()
			store = repository.NewEdgeRepo(client)
		}
	}

	selector := service.NewSelector(store, cfg.DeckLimit)
	publisher := queue.NewPublisher(cfg.AMQPURL, log)
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Info("redis unavailable, cache and rate limiting disabled")
	}

	deckHandler := handler.NewDeckHandler(selector, publisher, log)
	diagHandler := &handler.DiagHandler{Client: client, InitErr: initErr, Masked: masked}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, deckHandler, diagHandler, rdb)

	addr := ":" + cfg.Port
	log.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
