package servers

import (
	"context"
	"fmt"
	"net"
	"runtime/debug"
	"strconv"
	"time"

	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/grpc/rpcpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

// rpcServer is the listen/serve/stop plumbing shared by the hello and document servers.
type rpcServer struct {
	name     string
	port     int
	server   *grpc.Server
	listener net.Listener
	health   *health.Server
}

func newRPCServer(name string, port int, register func(*grpc.Server)) *rpcServer {
	s := &rpcServer{
		name:   name,
		port:   port,
		server: grpc.NewServer(
			grpc.ChainUnaryInterceptor(recoverUnary, logUnary),
			grpc.MaxRecvMsgSize(rpcpb.MaxMessageSize),
			grpc.MaxSendMsgSize(rpcpb.MaxMessageSize),
			// clients ping every 10s
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
				MinTime:             5 * time.Second,
				PermitWithoutStream: true,
			}),
		),
		health: health.NewServer(),
	}
	register(s.server)
	healthpb.RegisterHealthServer(s.server, s.health)
	return s
}

func (s *rpcServer) start() error {
	lis, err := net.Listen("tcp", ":"+strconv.Itoa(s.port))
	if err != nil {
		logging.Logger.Error("fail listen", "server", s.name, "port", s.port, "error", err)
		return fmt.Errorf("%s: listen on port %d: %w", s.name, s.port, err)
	}
	s.serve(lis)
	return nil
}

// serve accepts calls on lis in the background.
func (s *rpcServer) serve(lis net.Listener) {
	s.listener = lis
	logging.Logger.Info("start grpc server", "server", s.name, "addr", lis.Addr().String())
	go func() {
		if err := s.server.Serve(lis); err != nil {
			logging.Logger.Error("fail grpc server", "server", s.name, "error", err)
		}
	}()
}

func (s *rpcServer) stop() error {
	s.health.Shutdown()
	s.server.GracefulStop()
	logging.Logger.Info("grpc server stopped", "server", s.name)
	return nil
}

func logUnary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	if code == codes.OK || code == codes.NotFound || code == codes.InvalidArgument {
		logging.Logger.Info("grpc call", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
	} else {
		logging.Logger.Error("grpc call", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start), "error", err)
	}
	return resp, err
}

func recoverUnary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("panic in grpc handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}
