package bootstrap

import (
	"go_doc_rpc/config"
	"go_doc_rpc/services"
	"go_doc_rpc/utils"
)

type Services struct {
	GreetingService *services.GreetingService
	DocService      *services.DocumentService
}

func NewServices(cfg *config.Config, repos *Repositories, infra *Infrastructure) *Services {
	res := &Services{}

	res.GreetingService = services.NewGreetingService()

	var publisher services.DocumentEventPublisher
	if infra.EventPublisher != nil {
		publisher = infra.EventPublisher
	}
	generator := utils.NewURIGenerator(utils.URIStrategy(cfg.Documents.URIStrategy), cfg.Documents.URIPrefix)
	res.DocService = services.NewDocumentService(repos.Documents, generator, infra.Cache, publisher, cfg)

	return res
}
