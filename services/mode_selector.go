package services

import (
	"context"
	"fmt"
	"strings"

	"go_doc_rpc/config"
	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/database"
	rds "go_doc_rpc/platform/redis"
	"go_doc_rpc/platform/storage"
	"go_doc_rpc/repository"
)

// BackendOpener connects to the configured real document store.
type BackendOpener interface {
	Open(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error)
}

type BackendOpenerFunc func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error)

func (f BackendOpenerFunc) Open(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
	return f(ctx, cfg)
}

// BackendSelection is the outcome of startup mode selection. It does not change afterwards.
type BackendSelection struct {
	Mode    models.BackendMode
	Backend repository.DocumentBackend
	Reason  string
}

// SelectBackend opens and pings the configured store once. Any failure selects the
// in-memory simulation store; the decision is never revisited.
func SelectBackend(ctx context.Context, cfg *config.Config, opener BackendOpener) *BackendSelection {
	kind := strings.ToLower(strings.TrimSpace(cfg.DocStore.Backend))
	if kind == "memory" || kind == "simulated" {
		logging.Logger.Info("document store disabled by configuration, running in simulation mode")
		return simulated("simulation mode requested by configuration")
	}
	if opener == nil {
		opener = DefaultBackendOpener()
	}

	backend, err := connect(ctx, &cfg.DocStore, opener)
	if err != nil {
		logging.Logger.Warn("document store unavailable, falling back to simulation mode",
			"backend", kind,
			"addr", cfg.DocStoreAddr(),
			"error", err,
		)
		return simulated(err.Error())
	}

	logging.Logger.Info("connected to document store", "backend", backend.Name(), "addr", cfg.DocStoreAddr())
	return &BackendSelection{
		Mode:    models.ModeReal,
		Backend: backend,
		Reason:  "connected to " + backend.Name(),
	}
}

func simulated(reason string) *BackendSelection {
	return &BackendSelection{
		Mode:    models.ModeSimulated,
		Backend: repository.NewMemoryBackend(),
		Reason:  reason,
	}
}

func connect(ctx context.Context, cfg *config.DocStoreConfig, opener BackendOpener) (backend repository.DocumentBackend, err error) {
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("document store client panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	backend, err = opener.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, fmt.Errorf("no document store returned for backend %q", cfg.Backend)
	}
	if err := backend.Ping(ctx); err != nil {
		_ = backend.Close()
		return nil, err
	}
	return backend, nil
}

// DefaultBackendOpener opens postgres, sqlite, minio, s3 and redis stores.
func DefaultBackendOpener() BackendOpener {
	return BackendOpenerFunc(openBackend)
}

func openBackend(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "postgres", "postgresql":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	case "sqlite":
		db, err := database.InitSQLite(cfg)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	case "minio", "s3":
		ss, err := storage.InitStorageService(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewObjectRepository(ss), nil
	case "redis":
		svc, err := rds.InitRedisAddr(ctx, fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), cfg.Username, cfg.Password, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisRepository(svc), nil
	default:
		return nil, fmt.Errorf("unknown document store backend: %q", cfg.Backend)
	}
}

func migrated(db *database.DB) (repository.DocumentBackend, error) {
	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repository.NewDocumentRepository(db), nil
}
