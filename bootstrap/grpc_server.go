package bootstrap

import (
	"errors"
	"fmt"

	"go_doc_rpc/config"
	"go_doc_rpc/platform/grpc/servers"
)

type GrpcServices struct {
	HelloServer    *servers.HelloServer
	DocumentServer *servers.DocumentServer
}

func NewGrpcServices(cfg *config.Config, services *Services) (*GrpcServices, error) {
	s := &GrpcServices{
		HelloServer:    servers.NewHelloServer(cfg, services.GreetingService),
		DocumentServer: servers.NewDocumentServer(cfg, services.DocService),
	}
	if err := s.HelloServer.Start(); err != nil {
		return nil, fmt.Errorf("failed to start hello service: %w", err)
	}
	if err := s.DocumentServer.Start(); err != nil {
		_ = s.HelloServer.Stop()
		return nil, fmt.Errorf("failed to start document service: %w", err)
	}
	return s, nil
}

func (s *GrpcServices) Shutdown() error {
	return errors.Join(s.HelloServer.Stop(), s.DocumentServer.Stop())
}
