package servers

import (
	"context"
	"errors"
	"net"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/models"
	"go_doc_rpc/platform/grpc/rpcpb"
	"go_doc_rpc/repository"
	"go_doc_rpc/services"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// DocumentServer exposes the document service as marklogic.MarkLogicService. Insert outcomes
// travel in the response status_code; only lookups use gRPC status codes.
type DocumentServer struct {
	*rpcServer
	documentService *services.DocumentService
}

func NewDocumentServer(cfg *config.Config, documentService *services.DocumentService) *DocumentServer {
	s := &DocumentServer{documentService: documentService}
	s.rpcServer = newRPCServer("document", cfg.Grpc.DocumentPort, func(gs *grpc.Server) {
		rpcpb.RegisterMarkLogicServiceServer(gs, s)
	})
	s.health.SetServingStatus(rpcpb.MarkLogicService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}

func (s *DocumentServer) Start() error { return s.start() }

// Serve accepts calls on an existing listener.
func (s *DocumentServer) Serve(lis net.Listener) { s.serve(lis) }

func (s *DocumentServer) Stop() error { return s.stop() }

func (s *DocumentServer) InsertDocument(ctx context.Context, req *rpcpb.DocumentRequest) (*rpcpb.DocumentResponse, error) {
	resp := s.documentService.InsertDocument(ctx, &models.DocumentRequest{
		JSONData:    req.GetJsonData(),
		DocumentURI: req.GetDocumentUri(),
		Collections: req.GetCollections(),
		Metadata:    req.GetMetadata(),
	})
	return &rpcpb.DocumentResponse{
		StatusMessage: resp.StatusMessage,
		StatusCode:    resp.StatusCode,
		DocumentUri:   resp.DocumentURI,
		Details:       resp.Details,
	}, nil
}

func (s *DocumentServer) GetDocument(ctx context.Context, req *rpcpb.GetDocumentRequest) (*rpcpb.GetDocumentResponse, error) {
	doc, err := s.documentService.GetDocument(ctx, req.GetDocumentUri())
	switch {
	case err == nil:
	case errors.Is(err, services.ErrURIRequired):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrDocumentNotFound):
		return nil, status.Errorf(codes.NotFound, "no document at %s", req.GetDocumentUri())
	case errors.Is(err, repository.ErrBackendUnavailable):
		return nil, status.Error(codes.Unavailable, "document store unavailable")
	default:
		return nil, status.Error(codes.Internal, "failed to read document")
	}

	return &rpcpb.GetDocumentResponse{
		DocumentUri: doc.URI,
		JsonData:    doc.Raw,
		Collections: doc.Collections,
		Metadata:    doc.Metadata,
		InsertedAt:  doc.InsertedAt.UTC().Format(time.RFC3339Nano),
		SizeBytes:   int64(doc.SizeBytes),
	}, nil
}
