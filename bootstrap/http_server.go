package bootstrap

import (
	"strconv"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/middleware"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/routes"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type HTTPServer struct {
	App  *fiber.App
	port int
}

func NewHTTPServer(cfg *config.Config, h *Handlers) *HTTPServer {
	app := fiber.New(fiber.Config{
		AppName:               "go_doc_rpc",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
	app.Use(middleware.Logger(cfg.IsProduction()))
	app.Use(middleware.CORS(cfg.Http.AllowOrigins))

	routes.RegisterHealthRoutes(app, h.HealthHandler)
	routes.RegisterHelloRoutes(app, h.HelloHandler)
	routes.RegisterDocumentRoutes(app, h.DocHandler)
	if h.WSHandler != nil {
		routes.SetupWebSocketRoutes(app, h.WSHandler)
	}

	return &HTTPServer{App: app, port: cfg.Http.Port}
}

func (s *HTTPServer) Start() {
	addr := ":" + strconv.Itoa(s.port)
	logging.Logger.Info("Server running", "addr", "http://localhost"+addr)
	go func() {
		if err := s.App.Listen(addr); err != nil {
			logging.Logger.Error("fail http server", "error", err)
		}
	}()
}

func (s *HTTPServer) Shutdown() error {
	return s.App.ShutdownWithTimeout(5 * time.Second)
}
