package bootstrap

import (
	"context"

	"go_doc_rpc/config"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/services"
)

type App struct {
	Cfg            *config.Config
	Infrastructure *Infrastructure
	Repositories   *Repositories
	Services       *Services
	GrpcServices   *GrpcServices
	Handlers       *Handlers
	HTTPServer     *HTTPServer
}

// NewApp wires the application and starts its servers. opener may be nil to use the
// built-in document store drivers.
func NewApp(ctx context.Context, cfg *config.Config, opener services.BackendOpener) (*App, error) {
	app := &App{Cfg: cfg}

	infra := NewInfrastructure(ctx, cfg)
	app.Infrastructure = infra

	// repos; the backend mode is fixed from here on
	repos := NewRepositories(ctx, cfg, opener)
	app.Repositories = repos

	// services
	svcs := NewServices(cfg, repos, infra)
	app.Services = svcs

	handlers := NewHandlers(svcs, infra)
	app.Handlers = handlers

	// grpc server
	grpcServices, err := NewGrpcServices(cfg, svcs)
	if err != nil {
		logging.Logger.Error("fail NewGrpcServices", "error", err)
		_ = repos.Shutdown()
		_ = infra.Shutdown()
		return nil, err
	}
	app.GrpcServices = grpcServices

	if cfg.Http.Enabled {
		app.HTTPServer = NewHTTPServer(cfg, handlers)
		app.HTTPServer.Start()
	}

	st := svcs.DocService.Status(ctx)
	logging.Logger.Info("document service ready",
		"mode", st.Mode,
		"backend", st.Backend,
		"documents", st.Documents,
		"reason", repos.Documents.Reason,
	)
	return app, nil
}

// Shutdown infra
func (a *App) Shutdown() error {
	if a == nil {
		return nil
	}
	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(); err != nil {
			logging.Logger.Error("fail shutting down http server", "error", err)
		}
	}
	if a.GrpcServices != nil {
		if err := a.GrpcServices.Shutdown(); err != nil {
			return err
		}
	}
	if a.Repositories != nil {
		if err := a.Repositories.Shutdown(); err != nil {
			logging.Logger.Error("fail closing document store", "error", err)
		}
	}
	if a.Infrastructure != nil {
		if err := a.Infrastructure.Shutdown(); err != nil {
			return err
		}
	}
	return nil
}
