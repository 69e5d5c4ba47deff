package bootstrap

import "go_doc_rpc/handlers"

type Handlers struct {
	HelloHandler  *handlers.HelloHandler
	DocHandler    *handlers.DocHandler
	HealthHandler *handlers.HealthHandler
	// nil when document events are disabled
	WSHandler *handlers.WSHandler
}

func NewHandlers(services *Services, infra *Infrastructure) *Handlers {
	res := &Handlers{
		HelloHandler:  handlers.NewHelloHandler(services.GreetingService),
		DocHandler:    handlers.NewDocHandler(services.DocService),
		HealthHandler: handlers.NewHealthHandler(services.DocService),
	}
	if infra.EventPublisher != nil {
		res.WSHandler = handlers.NewWSHandler(infra.EventPublisher)
	}
	return res
}
