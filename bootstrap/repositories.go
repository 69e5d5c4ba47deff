package bootstrap

import (
	"context"

	"go_doc_rpc/config"
	"go_doc_rpc/services"
)

type Repositories struct {
	Documents *services.BackendSelection
}

// NewRepositories decides between the configured document store and the simulation store.
// It runs once, before any server accepts calls.
func NewRepositories(ctx context.Context, cfg *config.Config, opener services.BackendOpener) *Repositories {
	return &Repositories{
		Documents: services.SelectBackend(ctx, cfg, opener),
	}
}

func (r *Repositories) Shutdown() error {
	return r.Documents.Backend.Close()
}
