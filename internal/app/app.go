package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hance08/ffly/internal/config"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/service"
)

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Client  *firefly.Client
	Service *service.Service
}

// NewApp builds the Firefly III client and the services from cfg. It fails
// with firefly.ErrNotConfigured until a server URL and token are set.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := firefly.NewClient(firefly.Config{
		URL:       cfg.Firefly.URL,
		Token:     cfg.Firefly.Token,
		Timeout:   cfg.HTTP.Timeout,
		RateLimit: cfg.HTTP.RateLimit,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Service: service.NewService(client, logger),
	}, nil
}

var ErrNotLoggedIn = errors.New("not logged in, run 'ffly login' first")

// Session carries what the root command loaded and builds the App on first
// use. Commands that need the server call App; login, logout and info only
// read the config.
type Session struct {
	Store  *config.Store
	Config *config.Config
	Logger *slog.Logger

	app *App
}

func (s *Session) App() (*App, error) {
	if s.app != nil {
		return s.app, nil
	}
	if s.Config == nil || !s.Config.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	a, err := NewApp(s.Config, s.Logger)
	if err != nil {
		return nil, err
	}
	s.app = a
	return a, nil
}

// Service is a shortcut for App().Service.
func (s *Session) Service() (*service.Service, error) {
	a, err := s.App()
	if err != nil {
		return nil, err
	}
	return a.Service, nil
}
