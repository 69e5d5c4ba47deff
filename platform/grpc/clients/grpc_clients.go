package clients

import (
	"fmt"
	"time"

	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/grpc/rpcpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

type GrpcClients struct {
	// connections
	helloConn    *grpc.ClientConn
	documentConn *grpc.ClientConn

	// services
	HelloClient    rpcpb.HelloServiceClient
	DocumentClient rpcpb.MarkLogicServiceClient
}

// NewGrpcClients connects to the hello and document servers. extra options are appended to
// the defaults.
func NewGrpcClients(helloAddr, documentAddr string, extra ...grpc.DialOption) (*GrpcClients, error) {
	clients := &GrpcClients{}

	helloConn, err := createGrpcConnection(helloAddr, extra...)
	if err != nil {
		logging.Logger.Error("fail createGrpcConnection", "addr", helloAddr, "error", err)
		return nil, err
	}
	clients.helloConn = helloConn
	clients.HelloClient = rpcpb.NewHelloServiceClient(helloConn)

	documentConn, err := createGrpcConnection(documentAddr, extra...)
	if err != nil {
		logging.Logger.Error("fail createGrpcConnection", "addr", documentAddr, "error", err)
		_ = helloConn.Close()
		return nil, err
	}
	clients.documentConn = documentConn
	clients.DocumentClient = rpcpb.NewMarkLogicServiceClient(documentConn)

	return clients, nil
}

func createGrpcConnection(address string, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),

		// Keep-Alive
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),

		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(rpcpb.MaxMessageSize),
			grpc.MaxCallSendMsgSize(rpcpb.MaxMessageSize),
		),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", address, err)
	}
	conn.Connect()
	return conn, nil
}

func (c *GrpcClients) Close() error {
	var errs []error

	if c.helloConn != nil {
		if err := c.helloConn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close hello connection: %w", err))
		}
	}
	if c.documentConn != nil {
		if err := c.documentConn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close document connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing connections: %v", errs)
	}
	return nil
}
