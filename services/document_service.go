package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/cache"
	"go_doc_rpc/repository"
	"go_doc_rpc/utils"

	"golang.org/x/sync/singleflight"
)

var (
	ErrURIRequired        = errors.New("document uri is required")
	ErrCollectionRequired = errors.New("collection name is required")
)

// DocumentEventPublisher receives a notification for every stored document.
type DocumentEventPublisher interface {
	PublishDocumentEvent(ctx context.Context, event *models.DocumentEvent) error
}

type DocumentService struct {
	mode           models.BackendMode
	backend        repository.DocumentBackend
	generator      *utils.URIGenerator
	docCache       *cache.TypedCache[*models.StoredDocument]
	publisher      DocumentEventPublisher
	allowOverwrite bool
	secureErrors   bool
	lookups        singleflight.Group
}

// NewDocumentService binds the service to the backend picked at startup. publisher may be nil.
func NewDocumentService(
	selection *BackendSelection,
	generator *utils.URIGenerator,
	cacheService cache.CacheService,
	publisher DocumentEventPublisher,
	cfg *config.Config,
) *DocumentService {
	return &DocumentService{
		mode:           selection.Mode,
		backend:        selection.Backend,
		generator:      generator,
		docCache:       cache.NewTypedCache[*models.StoredDocument](cacheService, "document:", cfg.Documents.CacheTTL),
		publisher:      publisher,
		allowOverwrite: cfg.Documents.AllowOverwrite,
		secureErrors:   cfg.SecureErrors(),
	}
}

func (s *DocumentService) Mode() models.BackendMode { return s.mode }

func (s *DocumentService) BackendName() string { return s.backend.Name() }

// InsertDocument validates and stores one document. Every outcome, including a panic further
// down, is reported through the response status code.
func (s *DocumentService) InsertDocument(ctx context.Context, req *models.DocumentRequest) (resp *models.DocumentResponse) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("panic during document insertion", "panic", r, "stack", string(debug.Stack()))
			resp = &models.DocumentResponse{
				StatusCode:    http.StatusInternalServerError,
				StatusMessage: "Error: Internal server error",
				Details:       s.describe("Unexpected error during document insertion", fmt.Errorf("%v", r)),
			}
		}
	}()
	if req == nil {
		req = &models.DocumentRequest{}
	}

	logging.Logger.Debug("received document insertion request",
		"uri", req.DocumentURI,
		"collections", req.Collections,
		"mode", s.mode.String(),
	)

	if req.JSONData == "" {
		return &models.DocumentResponse{
			StatusCode:    http.StatusBadRequest,
			StatusMessage: "Error: JSON data is required",
			Details:       "The json_data field cannot be empty",
		}
	}

	payload, err := models.ParsePayload(req.JSONData)
	if err != nil {
		logging.Logger.Warn("rejected invalid json document", "error", err)
		return &models.DocumentResponse{
			StatusCode:    http.StatusBadRequest,
			StatusMessage: "Error: Invalid JSON format",
			Details:       "Invalid JSON format: " + err.Error(),
		}
	}

	doc := &models.StoredDocument{
		URI:         req.DocumentURI,
		Raw:         req.JSONData,
		Data:        payload,
		Collections: req.Collections,
		Metadata:    req.Metadata,
		InsertedAt:  time.Now().UTC(),
		SizeBytes:   len(req.JSONData),
	}
	newURI := func() string { return s.generator.Generate(req.Collections) }

	uri, err := s.backend.Insert(ctx, doc, newURI, s.allowOverwrite)
	if err != nil {
		return s.insertFailure(req, err)
	}
	doc.URI = uri

	if err := s.docCache.Set(uri, doc.Clone()); err != nil {
		logging.Logger.Warn("fail caching document", "uri", uri, "error", err)
	}
	s.publishInserted(ctx, doc)

	if s.mode == models.ModeSimulated {
		total, _ := s.backend.Count(ctx)
		logging.Logger.Info("document inserted in simulation", "uri", uri, "collections", req.Collections, "total", total)
		return &models.DocumentResponse{
			StatusCode:    http.StatusOK,
			StatusMessage: "Document inserted successfully (simulation mode)",
			DocumentURI:   uri,
			Details: fmt.Sprintf("Document size: %d bytes, Collections: %d, Mode: Simulation",
				doc.SizeBytes, len(req.Collections)),
		}
	}

	logging.Logger.Info("document inserted", "uri", uri, "backend", s.backend.Name(), "collections", req.Collections)
	return &models.DocumentResponse{
		StatusCode:    http.StatusOK,
		StatusMessage: "Document inserted successfully into " + s.backend.Name(),
		DocumentURI:   uri,
		Details: fmt.Sprintf("Document inserted with %d collections and %d metadata entries",
			len(req.Collections), len(req.Metadata)),
	}
}

func (s *DocumentService) insertFailure(req *models.DocumentRequest, err error) *models.DocumentResponse {
	switch {
	case errors.Is(err, repository.ErrDocumentExists):
		logging.Logger.Warn("document uri already exists", "uri", req.DocumentURI)
		return &models.DocumentResponse{
			StatusCode:    http.StatusConflict,
			StatusMessage: "Error: Document already exists",
			DocumentURI:   req.DocumentURI,
			Details:       fmt.Sprintf("A document already exists at URI %s", req.DocumentURI),
		}
	case errors.Is(err, repository.ErrBackendUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		logging.Logger.Error("document store connection error", "backend", s.backend.Name(), "error", err)
		return &models.DocumentResponse{
			StatusCode:    http.StatusServiceUnavailable,
			StatusMessage: "Error: Document store connection error",
			Details:       s.describe("Document store connection error", err),
		}
	default:
		logging.Logger.Error("fail InsertDocument", "backend", s.backend.Name(), "error", err)
		return &models.DocumentResponse{
			StatusCode:    http.StatusInternalServerError,
			StatusMessage: "Error: Internal server error",
			Details:       s.describe("Unexpected error during document insertion", err),
		}
	}
}

// describe appends the cause unless errors are configured to stay opaque.
func (s *DocumentService) describe(summary string, err error) string {
	if s.secureErrors || err == nil {
		return summary
	}
	return summary + ": " + err.Error()
}

func (s *DocumentService) publishInserted(ctx context.Context, doc *models.StoredDocument) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishDocumentEvent(ctx, &models.DocumentEvent{
		Type:        models.EventDocumentInserted,
		DocumentURI: doc.URI,
		Collections: doc.Collections,
		Mode:        s.mode.String(),
		Backend:     s.backend.Name(),
		SizeBytes:   doc.SizeBytes,
	})
	if err != nil {
		logging.Logger.Warn("fail PublishDocumentEvent", "uri", doc.URI, "error", err)
	}
}

// GetDocument returns the document stored under uri. Concurrent lookups of one URI share a
// single backend read.
func (s *DocumentService) GetDocument(ctx context.Context, uri string) (*models.StoredDocument, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrURIRequired
	}

	cached, ok, err := s.docCache.Get(uri)
	if err != nil {
		logging.Logger.Warn("fail reading document cache", "uri", uri, "error", err)
	}
	if ok && err == nil {
		return cached.Clone(), nil
	}

	v, err, _ := s.lookups.Do(uri, func() (interface{}, error) {
		doc, err := s.backend.Get(ctx, uri)
		if err != nil {
			return nil, err
		}
		if err := s.docCache.Set(uri, doc); err != nil {
			logging.Logger.Warn("fail caching document", "uri", uri, "error", err)
		}
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, repository.ErrDocumentNotFound) {
			logging.Logger.Error("fail GetDocument", "uri", uri, "error", err)
		}
		return nil, err
	}
	return v.(*models.StoredDocument).Clone(), nil
}

// ListCollection returns the URIs of documents labelled with collection.
func (s *DocumentService) ListCollection(ctx context.Context, collection string) ([]string, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, ErrCollectionRequired
	}
	uris, err := s.backend.CollectionMembers(ctx, collection)
	if err != nil {
		logging.Logger.Error("fail ListCollection", "collection", collection, "error", err)
		return nil, err
	}
	return uris, nil
}

// Status reports the selected mode and how many documents the backend holds.
func (s *DocumentService) Status(ctx context.Context) models.ServiceStatus {
	status := models.ServiceStatus{
		Status:     "ok",
		Mode:       s.mode.String(),
		Backend:    s.backend.Name(),
		URIsIssued: s.generator.Issued(),
	}
	n, err := s.backend.Count(ctx)
	if err != nil {
		logging.Logger.Warn("fail counting documents", "backend", s.backend.Name(), "error", err)
		status.Status = "degraded"
		return status
	}
	status.Documents = n
	return status
}
