package repository

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
)

// memoryBackend is the simulation-mode store. Contents live as long as the process.
type memoryBackend struct {
	mu        sync.RWMutex
	documents map[string]*models.StoredDocument
}

func NewMemoryBackend() DocumentBackend {
	return &memoryBackend{documents: make(map[string]*models.StoredDocument)}
}

func (m *memoryBackend) Name() string { return "memory" }

func (m *memoryBackend) Ping(ctx context.Context) error { return nil }

func (m *memoryBackend) Insert(ctx context.Context, doc *models.StoredDocument, newURI URIFunc, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify("memory insert", err)
	}
	stored := doc.Clone()
	if stored.InsertedAt.IsZero() {
		stored.InsertedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if stored.URI == "" {
		uri, err := m.freeURI(newURI)
		if err != nil {
			return "", err
		}
		stored.URI = uri
	} else if _, exists := m.documents[stored.URI]; exists {
		if !overwrite {
			return "", ErrDocumentExists
		}
		logging.Logger.Warn("document uri already exists in simulation store, overwriting", "uri", stored.URI)
	}

	m.documents[stored.URI] = stored
	return stored.URI, nil
}

// freeURI must be called with m.mu held.
func (m *memoryBackend) freeURI(newURI URIFunc) (string, error) {
	for i := 0; i < maxURIAttempts; i++ {
		uri := newURI()
		if _, taken := m.documents[uri]; !taken {
			return uri, nil
		}
	}
	return "", errors.New("could not generate a free document uri")
}

func (m *memoryBackend) Get(ctx context.Context, uri string) (*models.StoredDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[uri]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

func (m *memoryBackend) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.documents)), nil
}

func (m *memoryBackend) CollectionMembers(ctx context.Context, collection string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uris := []string{}
	for uri, doc := range m.documents {
		if slices.Contains(doc.Collections, collection) {
			uris = append(uris, uri)
		}
	}
	slices.Sort(uris)
	return uris, nil
}

func (m *memoryBackend) Close() error { return nil }
