package servers

import (
	"context"
	"net"

	"go_doc_rpc/config"
	"go_doc_rpc/platform/grpc/rpcpb"
	"go_doc_rpc/services"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type HelloServer struct {
	*rpcServer
	greetingService *services.GreetingService
}

func NewHelloServer(cfg *config.Config, greetingService *services.GreetingService) *HelloServer {
	s := &HelloServer{greetingService: greetingService}
	s.rpcServer = newRPCServer("hello", cfg.Grpc.HelloPort, func(gs *grpc.Server) {
		rpcpb.RegisterHelloServiceServer(gs, s)
	})
	s.health.SetServingStatus(rpcpb.HelloService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}

func (s *HelloServer) Start() error { return s.start() }

// Serve accepts calls on an existing listener.
func (s *HelloServer) Serve(lis net.Listener) { s.serve(lis) }

func (s *HelloServer) Stop() error { return s.stop() }

func (s *HelloServer) SayHello(ctx context.Context, req *rpcpb.HelloRequest) (*rpcpb.HelloResponse, error) {
	return &rpcpb.HelloResponse{Message: s.greetingService.Greet(req.GetName())}, nil
}
