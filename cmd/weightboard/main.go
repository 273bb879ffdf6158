package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	adapthttp "weightboard/internal/adapter/http"
	"weightboard/internal/adapter/memory"
	"weightboard/internal/adapter/postgres"
	"weightboard/internal/app"
	"weightboard/internal/config"
	"weightboard/internal/domain"
	"weightboard/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	env := flag.String("env", "development", "config environment: development or production")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath, *env)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
	})

	var (
		entryRepo   domain.EntryRepository
		profileRepo domain.ProfileRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			logrus.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		entryRepo = db
		profileRepo = db
		userRepo = db
		sessionRepo = postgres.NewSessionRepo(db)
		logrus.Info("using postgres store")
	} else {
		db := memory.New()
		entryRepo = db
		profileRepo = db
		userRepo = db
		sessionRepo = memory.NewSessionRepo(db)
		logrus.Warn("DATABASE_URL not set, using in-memory store")
	}

	entriesSvc := app.NewEntriesService(entryRepo)
	profileSvc := app.NewProfileService(profileRepo)
	authSvc := app.NewAuthService(userRepo, sessionRepo)

	var sso *adapthttp.OIDC
	if cfg.OIDCIssuer != "" {
		var err error
		sso, err = adapthttp.NewOIDC(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			logrus.Fatalf("oidc setup: %v", err)
		}
		logrus.WithField("issuer", cfg.OIDCIssuer).Info("single sign-on enabled")
	}

	h := adapthttp.New(entriesSvc, profileSvc, authSvc, sso, cfg.WebDir).Handler()
	logrus.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}
