package services_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/models"
	"go_doc_rpc/platform/cache"
	"go_doc_rpc/repository"
	"go_doc_rpc/services"
	"go_doc_rpc/utils"

	"github.com/alicebob/miniredis/v2"
)

// stubBackend wraps the memory backend so failures and call counts can be injected.
type stubBackend struct {
	repository.DocumentBackend
	name      string
	insertErr error
	pingErr   error
	panicMsg  string
	gets      atomic.Int32
	closed    atomic.Bool
}

func newStub(name string) *stubBackend {
	return &stubBackend{DocumentBackend: repository.NewMemoryBackend(), name: name}
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) Ping(ctx context.Context) error { return b.pingErr }

func (b *stubBackend) Insert(ctx context.Context, doc *models.StoredDocument, newURI repository.URIFunc, overwrite bool) (string, error) {
	if b.panicMsg != "" {
		panic(b.panicMsg)
	}
	if b.insertErr != nil {
		return "", b.insertErr
	}
	return b.DocumentBackend.Insert(ctx, doc, newURI, overwrite)
}

func (b *stubBackend) Get(ctx context.Context, uri string) (*models.StoredDocument, error) {
	b.gets.Add(1)
	return b.DocumentBackend.Get(ctx, uri)
}

func (b *stubBackend) Close() error {
	b.closed.Store(true)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*models.DocumentEvent
	err    error
}

func (p *recordingPublisher) PublishDocumentEvent(ctx context.Context, event *models.DocumentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Environment: "development"},
		Security: config.SecurityConfig{ErrorMode: "detailed"},
		DocStore: config.DocStoreConfig{Backend: "postgres", Host: "127.0.0.1", Port: 1, ConnectTimeout: time.Second},
		Documents: config.DocumentsConfig{
			URIPrefix:      "/documents",
			URIStrategy:    "counter",
			AllowOverwrite: true,
			CacheTTL:       time.Minute,
		},
	}
}

func newDocumentService(cfg *config.Config, mode models.BackendMode, backend repository.DocumentBackend, publisher services.DocumentEventPublisher) *services.DocumentService {
	selection := &services.BackendSelection{Mode: mode, Backend: backend}
	generator := utils.NewURIGenerator(utils.URIStrategy(cfg.Documents.URIStrategy), cfg.Documents.URIPrefix)
	return services.NewDocumentService(selection, generator, cache.InitL1Cache(time.Minute), publisher, cfg)
}

func simulatedService(t *testing.T) *services.DocumentService {
	t.Helper()
	return newDocumentService(testConfig(), models.ModeSimulated, repository.NewMemoryBackend(), nil)
}

func TestGreet(t *testing.T) {
	g := services.NewGreetingService()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"world", "World", "Hello, World! Welcome to gRPC with Protocol Buffers!"},
		{"empty uses default", "", "Hello, World! Welcome to gRPC with Protocol Buffers!"},
		{"trimmed", "  Ada ", "Hello, Ada! Welcome to gRPC with Protocol Buffers!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Greet(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInsertSimulatedRoundTrip(t *testing.T) {
	svc := simulatedService(t)
	ctx := context.Background()

	raw := `{"name": "John", "age": 30, "ratio": 1.50}`
	resp := svc.InsertDocument(ctx, &models.DocumentRequest{
		JSONData:    raw,
		Collections: []string{"a", "b"},
		Metadata:    map[string]string{"k": "v"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Details)
	}
	if resp.StatusMessage != "Document inserted successfully (simulation mode)" {
		t.Fatalf("unexpected message %q", resp.StatusMessage)
	}
	if !strings.HasPrefix(resp.DocumentURI, "/documents/doc_1_") || !strings.HasSuffix(resp.DocumentURI, ".json") {
		t.Fatalf("unexpected uri %q", resp.DocumentURI)
	}
	wantDetails := fmt.Sprintf("Document size: %d bytes, Collections: 2, Mode: Simulation", len(raw))
	if resp.Details != wantDetails {
		t.Fatalf("expected details %q, got %q", wantDetails, resp.Details)
	}

	doc, err := svc.GetDocument(ctx, resp.DocumentURI)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Raw != raw {
		t.Fatalf("payload changed: %q", doc.Raw)
	}
	if len(doc.Collections) != 2 || doc.Collections[0] != "a" || doc.Collections[1] != "b" {
		t.Fatalf("unexpected collections %v", doc.Collections)
	}
	if len(doc.Metadata) != 1 || doc.Metadata["k"] != "v" {
		t.Fatalf("unexpected metadata %v", doc.Metadata)
	}
}

func TestInsertAcceptsEveryJSONKind(t *testing.T) {
	svc := simulatedService(t)
	for _, raw := range []string{`{"a": 1}`, `[1, "two", null]`, `"text"`, `42`, `true`, `null`} {
		resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: raw})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", raw, resp.StatusCode, resp.Details)
		}
	}
}

func TestInsertRequiresJSONData(t *testing.T) {
	svc := simulatedService(t)
	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if resp.StatusMessage != "Error: JSON data is required" {
		t.Fatalf("unexpected message %q", resp.StatusMessage)
	}
	if resp.DocumentURI != "" {
		t.Fatalf("expected no uri, got %q", resp.DocumentURI)
	}
	if st := svc.Status(context.Background()); st.Documents != 0 {
		t.Fatalf("expected empty store, got %d documents", st.Documents)
	}
}

func TestInsertRejectsMalformedJSON(t *testing.T) {
	svc := simulatedService(t)
	for _, raw := range []string{
		`{"name": "John"`,
		`{name: "John"}`,
		`{"a": 1} trailing`,
		`[1, 2,]`,
		`{"name": "John"}}`,
		`[1, 2]]`,
		`tru`,
		`{"a": 01}`,
		"   ",
	} {
		t.Run(raw, func(t *testing.T) {
			resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: raw, DocumentURI: "/bad.json"})
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if resp.StatusMessage != "Error: Invalid JSON format" {
				t.Fatalf("unexpected message %q", resp.StatusMessage)
			}
			if !strings.HasPrefix(resp.Details, "Invalid JSON format: ") {
				t.Fatalf("expected parser message in details, got %q", resp.Details)
			}
		})
	}
	if _, err := svc.GetDocument(context.Background(), "/bad.json"); !errors.Is(err, repository.ErrDocumentNotFound) {
		t.Fatalf("expected no mutation, got %v", err)
	}
	if st := svc.Status(context.Background()); st.Documents != 0 {
		t.Fatalf("malformed documents were stored: %d", st.Documents)
	}
}

func TestInsertKeepsCallerURI(t *testing.T) {
	svc := simulatedService(t)
	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`, DocumentURI: "/custom/doc.json"})
	if resp.StatusCode != http.StatusOK || resp.DocumentURI != "/custom/doc.json" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestInsertOverwritePolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed", func(t *testing.T) {
		svc := simulatedService(t)
		for _, raw := range []string{`{"v": 1}`, `{"v": 2}`} {
			resp := svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: raw, DocumentURI: "/same.json"})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
		}
		doc, err := svc.GetDocument(ctx, "/same.json")
		if err != nil {
			t.Fatal(err)
		}
		if doc.Raw != `{"v": 2}` {
			t.Fatalf("expected second write to win, got %q", doc.Raw)
		}
	})

	t.Run("disallowed", func(t *testing.T) {
		cfg := testConfig()
		cfg.Documents.AllowOverwrite = false
		svc := newDocumentService(cfg, models.ModeSimulated, repository.NewMemoryBackend(), nil)
		first := svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: `{"v": 1}`, DocumentURI: "/same.json"})
		if first.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", first.StatusCode)
		}
		second := svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: `{"v": 2}`, DocumentURI: "/same.json"})
		if second.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409, got %d", second.StatusCode)
		}
		doc, err := svc.GetDocument(ctx, "/same.json")
		if err != nil {
			t.Fatal(err)
		}
		if doc.Raw != `{"v": 1}` {
			t.Fatalf("rejected write replaced the document: %q", doc.Raw)
		}
	})
}

func TestConcurrentInsertsGetDistinctURIs(t *testing.T) {
	svc := simulatedService(t)
	const n = 64

	uris := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: fmt.Sprintf(`{"i": %d}`, i)})
			if resp.StatusCode != http.StatusOK {
				t.Errorf("insert %d: status %d", i, resp.StatusCode)
			}
			uris[i] = resp.DocumentURI
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, uri := range uris {
		if uri == "" || seen[uri] {
			t.Fatalf("duplicate or empty uri %q", uri)
		}
		seen[uri] = true
	}
	if st := svc.Status(context.Background()); st.Documents != n {
		t.Fatalf("expected %d documents, got %d", n, st.Documents)
	}
}

func TestInsertRealModeMessages(t *testing.T) {
	svc := newDocumentService(testConfig(), models.ModeReal, newStub("postgres"), nil)
	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{
		JSONData:    `{"x": 1}`,
		Collections: []string{"c"},
		Metadata:    map[string]string{"a": "1", "b": "2"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.StatusMessage != "Document inserted successfully into postgres" {
		t.Fatalf("unexpected message %q", resp.StatusMessage)
	}
	if resp.Details != "Document inserted with 1 collections and 2 metadata entries" {
		t.Fatalf("unexpected details %q", resp.Details)
	}
}

func TestInsertBackendFailures(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	tests := []struct {
		name       string
		errorMode  string
		insertErr  error
		panicMsg   string
		wantStatus int32
		wantCause  bool
	}{
		{"unavailable detailed", "detailed", fmt.Errorf("postgres insert: %w: %v", repository.ErrBackendUnavailable, cause), "", http.StatusServiceUnavailable, true},
		{"unavailable secure", "secure", fmt.Errorf("postgres insert: %w: %v", repository.ErrBackendUnavailable, cause), "", http.StatusServiceUnavailable, false},
		{"deadline", "detailed", context.DeadlineExceeded, "", http.StatusServiceUnavailable, false},
		{"internal detailed", "detailed", errors.New("constraint violated"), "", http.StatusInternalServerError, true},
		{"internal secure", "secure", errors.New("constraint violated"), "", http.StatusInternalServerError, false},
		{"panic", "detailed", nil, "driver exploded", http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Security.ErrorMode = tt.errorMode
			backend := newStub("postgres")
			backend.insertErr = tt.insertErr
			backend.panicMsg = tt.panicMsg
			svc := newDocumentService(cfg, models.ModeReal, backend, nil)

			resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`})
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if resp.DocumentURI != "" {
				t.Fatalf("expected no uri on failure, got %q", resp.DocumentURI)
			}
			leaked := strings.Contains(resp.Details, "connection refused") ||
				strings.Contains(resp.Details, "constraint violated") ||
				strings.Contains(resp.Details, "driver exploded")
			if tt.wantCause && !leaked {
				t.Fatalf("expected cause in details, got %q", resp.Details)
			}
			if !tt.wantCause && leaked {
				t.Fatalf("cause leaked into details: %q", resp.Details)
			}
		})
	}
}

func TestProductionHidesCauses(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = "production"
	backend := newStub("postgres")
	backend.insertErr = errors.New("secret table name")
	svc := newDocumentService(cfg, models.ModeReal, backend, nil)

	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`})
	if strings.Contains(resp.Details, "secret") {
		t.Fatalf("cause leaked into details: %q", resp.Details)
	}
}

func TestInsertPublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newDocumentService(testConfig(), models.ModeSimulated, repository.NewMemoryBackend(), pub)

	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `[1]`, Collections: []string{"c"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	_ = svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{`})

	if len(pub.events) != 1 {
		t.Fatalf("expected one event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Type != models.EventDocumentInserted || ev.DocumentURI != resp.DocumentURI || ev.Mode != "simulated" || ev.Backend != "memory" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestPublishFailureDoesNotFailInsert(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("redis down")}
	svc := newDocumentService(testConfig(), models.ModeSimulated, repository.NewMemoryBackend(), pub)

	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGetDocument(t *testing.T) {
	backend := newStub("memory")
	svc := newDocumentService(testConfig(), models.ModeSimulated, backend, nil)
	ctx := context.Background()

	if _, err := svc.GetDocument(ctx, " "); !errors.Is(err, services.ErrURIRequired) {
		t.Fatalf("expected ErrURIRequired, got %v", err)
	}
	if _, err := svc.GetDocument(ctx, "/nope.json"); !errors.Is(err, repository.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}

	resp := svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: `{"a": 1}`})
	before := backend.gets.Load()
	doc, err := svc.GetDocument(ctx, resp.DocumentURI)
	if err != nil {
		t.Fatal(err)
	}
	if backend.gets.Load() != before {
		t.Fatal("expected freshly inserted document to be served from cache")
	}

	doc.Collections = append(doc.Collections, "mutated")
	again, err := svc.GetDocument(ctx, resp.DocumentURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Collections) != 0 {
		t.Fatalf("cached document shares state with caller: %v", again.Collections)
	}

	again.Data.Object["a"] = "mutated"
	third, err := svc.GetDocument(ctx, resp.DocumentURI)
	if err != nil {
		t.Fatal(err)
	}
	if third.Data.Object["a"] == "mutated" {
		t.Fatal("cached payload shares state with caller")
	}
}

func TestStatus(t *testing.T) {
	svc := simulatedService(t)
	_ = svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`})
	_ = svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{}`, DocumentURI: "/mine.json"})

	st := svc.Status(context.Background())
	if st.Status != "ok" || st.Mode != "simulated" || st.Backend != "memory" || st.Documents != 2 {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.URIsIssued != 1 {
		t.Fatalf("expected one generated uri, got %d", st.URIsIssued)
	}
}

func TestListCollection(t *testing.T) {
	svc := simulatedService(t)
	ctx := context.Background()

	first := svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: `{}`, Collections: []string{"reports", "2024"}})
	_ = svc.InsertDocument(ctx, &models.DocumentRequest{JSONData: `{}`, Collections: []string{"drafts"}})

	uris, err := svc.ListCollection(ctx, " reports ")
	if err != nil {
		t.Fatal(err)
	}
	if len(uris) != 1 || uris[0] != first.DocumentURI {
		t.Fatalf("unexpected members %v", uris)
	}
	if _, err := svc.ListCollection(ctx, "  "); !errors.Is(err, services.ErrCollectionRequired) {
		t.Fatalf("expected ErrCollectionRequired, got %v", err)
	}
	empty, err := svc.ListCollection(ctx, "unknown")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no members, got %v, %v", empty, err)
	}
}

func TestSelectBackendMemoryByConfig(t *testing.T) {
	cfg := testConfig()
	cfg.DocStore.Backend = "memory"
	opener := services.BackendOpenerFunc(func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
		t.Fatal("opener must not be called")
		return nil, nil
	})

	sel := services.SelectBackend(context.Background(), cfg, opener)
	if sel.Mode != models.ModeSimulated || sel.Backend.Name() != "memory" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestSelectBackendFallsBack(t *testing.T) {
	pingFails := newStub("postgres")
	pingFails.pingErr = errors.New("authentication failed")

	tests := []struct {
		name   string
		opener services.BackendOpener
	}{
		{"open error", services.BackendOpenerFunc(func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
			return nil, errors.New("connection refused")
		})},
		{"ping error", services.BackendOpenerFunc(func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
			return pingFails, nil
		})},
		{"panic", services.BackendOpenerFunc(func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
			panic("client library bug")
		})},
		{"nil backend", services.BackendOpenerFunc(func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
			return nil, nil
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := services.SelectBackend(context.Background(), testConfig(), tt.opener)
			if sel.Mode != models.ModeSimulated {
				t.Fatalf("expected simulated mode, got %s", sel.Mode)
			}
			if sel.Backend.Name() != "memory" {
				t.Fatalf("expected memory backend, got %s", sel.Backend.Name())
			}
			if sel.Reason == "" {
				t.Fatal("expected a reason")
			}
		})
	}
	if !pingFails.closed.Load() {
		t.Fatal("expected backend that failed its ping to be closed")
	}
}

func TestSelectBackendReal(t *testing.T) {
	store := newStub("postgres")
	sel := services.SelectBackend(context.Background(), testConfig(), services.BackendOpenerFunc(
		func(ctx context.Context, cfg *config.DocStoreConfig) (repository.DocumentBackend, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected connect deadline on context")
			}
			return store, nil
		}))
	if sel.Mode != models.ModeReal || sel.Backend != store {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestSelectBackendUnreachableStoreStillServes(t *testing.T) {
	cfg := testConfig()
	cfg.DocStore.Backend = "redis"
	cfg.DocStore.Host = "127.0.0.1"
	cfg.DocStore.Port = 1
	cfg.DocStore.ConnectTimeout = 200 * time.Millisecond

	sel := services.SelectBackend(context.Background(), cfg, nil)
	if sel.Mode != models.ModeSimulated {
		t.Fatalf("expected simulated mode, got %s", sel.Mode)
	}

	svc := newDocumentService(cfg, sel.Mode, sel.Backend, nil)
	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{"ok": true}`})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSelectBackendUnknownKind(t *testing.T) {
	cfg := testConfig()
	cfg.DocStore.Backend = "marklogic"
	sel := services.SelectBackend(context.Background(), cfg, nil)
	if sel.Mode != models.ModeSimulated || !strings.Contains(sel.Reason, "unknown") {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestDefaultOpenerRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.DocStore.Backend = "redis"
	cfg.DocStore.Host = mr.Host()
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatal(err)
	}
	cfg.DocStore.Port = port
	cfg.DocStore.Username = ""
	cfg.DocStore.Password = ""

	sel := services.SelectBackend(context.Background(), cfg, nil)
	defer func() { _ = sel.Backend.Close() }()
	if sel.Mode != models.ModeReal || sel.Backend.Name() != "redis" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestDefaultOpenerSQLite(t *testing.T) {
	cfg := testConfig()
	cfg.DocStore.Backend = "sqlite"
	cfg.DocStore.Path = filepath.Join(t.TempDir(), "documents.db")

	sel := services.SelectBackend(context.Background(), cfg, nil)
	defer func() { _ = sel.Backend.Close() }()
	if sel.Mode != models.ModeReal || sel.Backend.Name() != "sqlite" {
		t.Fatalf("unexpected selection %+v", sel)
	}

	svc := newDocumentService(cfg, sel.Mode, sel.Backend, nil)
	resp := svc.InsertDocument(context.Background(), &models.DocumentRequest{JSONData: `{"k": [1, 2]}`, Collections: []string{"a"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Details)
	}
	if resp.StatusMessage != "Document inserted successfully into sqlite" {
		t.Fatalf("unexpected message %q", resp.StatusMessage)
	}
}
