// Package config loads service configuration from defaults, an optional settings file and
// the process environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Security  SecurityConfig  `koanf:"security"`
	Grpc      GrpcConfig      `koanf:"grpc"`
	Http      HttpConfig      `koanf:"http"`
	DocStore  DocStoreConfig  `koanf:"docstore"`
	Events    EventsConfig    `koanf:"events"`
	Documents DocumentsConfig `koanf:"documents"`
}

type AppConfig struct {
	Environment string `koanf:"environment"` // development, production
	LogLevel    string `koanf:"log_level"`
}

type SecurityConfig struct {
	ErrorMode string `koanf:"error_mode"` // detailed or secure
}

type GrpcConfig struct {
	HelloPort    int `koanf:"hello_port"`
	DocumentPort int `koanf:"document_port"`
}

type HttpConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         int    `koanf:"port"`
	AllowOrigins string `koanf:"allow_origins"`
}

// DocStoreConfig describes the external document store checked at startup.
type DocStoreConfig struct {
	Backend      string        `koanf:"backend"` // postgres, sqlite, minio, s3, redis, memory
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Username     string        `koanf:"username"`
	Password     string        `koanf:"password"`
	Database     string        `koanf:"database"`
	Path         string        `koanf:"path"`
	UseSSL       bool          `koanf:"use_ssl"`
	Region       string        `koanf:"region"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

type EventsConfig struct {
	RedisURL string `koanf:"redis_url"`
}

type DocumentsConfig struct {
	URIPrefix      string        `koanf:"uri_prefix"`
	URIStrategy    string        `koanf:"uri_strategy"` // counter or collection
	AllowOverwrite bool          `koanf:"allow_overwrite"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
}

// envKeys maps environment variable names onto config keys.
var envKeys = map[string]string{
	"APP_ENV":                   "app.environment",
	"LOG_LEVEL":                 "app.log_level",
	"ERROR_MODE":                "security.error_mode",
	"HELLO_GRPC_PORT":           "grpc.hello_port",
	"DOC_GRPC_PORT":             "grpc.document_port",
	"HTTP_ENABLED":              "http.enabled",
	"PORT":                      "http.port",
	"ALLOW_ORIGINS":             "http.allow_origins",
	"DOCSTORE_BACKEND":          "docstore.backend",
	"DOCSTORE_HOST":             "docstore.host",
	"DOCSTORE_PORT":             "docstore.port",
	"DOCSTORE_USERNAME":         "docstore.username",
	"DOCSTORE_PASSWORD":         "docstore.password",
	"DOCSTORE_DATABASE":         "docstore.database",
	"DOCSTORE_PATH":             "docstore.path",
	"DOCSTORE_USE_SSL":          "docstore.use_ssl",
	"DOCSTORE_REGION":           "docstore.region",
	"DOCSTORE_CONNECT_TIMEOUT":    "docstore.connect_timeout",
	"REDIS_URL":                 "events.redis_url",
	"DOCUMENTS_URI_PREFIX":      "documents.uri_prefix",
	"DOCUMENTS_URI_STRATEGY":    "documents.uri_strategy",
	"DOCUMENTS_ALLOW_OVERWRITE": "documents.allow_overwrite",
	"DOCUMENTS_CACHE_TTL":       "documents.cache_ttl",
}

type loadOptions struct {
	files   []string
	environ func() []string
}

type Option func(*loadOptions)

// WithFile adds a settings file; .yaml/.yml and .json are supported.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.files = append(o.files, path) }
}

// WithEnviron replaces os.Environ as the environment source.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) { o.environ = environ }
}

// LoadConfig merges, in increasing precedence: defaults, config.yaml / config.json in the
// working directory (or CONFIG_FILE), explicitly passed files, and environment variables.
func LoadConfig(opts ...Option) (*Config, error) {
	o := &loadOptions{environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	setDefaults(k)

	files := defaultFiles()
	files = append(files, o.files...)
	for _, path := range files {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		EnvironFunc:   o.environ,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]interface{}{
		"app.environment":           "development",
		"app.log_level":             "info",
		"security.error_mode":       "detailed",
		"grpc.hello_port":           50051,
		"grpc.document_port":        50052,
		"http.enabled":              true,
		"http.port":                 3000,
		"http.allow_origins":        "*",
		"docstore.backend":          "postgres",
		"docstore.host":             "localhost",
		"docstore.port":             5432,
		"docstore.username":         "admin",
		"docstore.password":         "admin",
		"docstore.database":         "Documents",
		"docstore.path":             "documents.db",
		"docstore.use_ssl":          false,
		"docstore.region":           "",
		"docstore.connect_timeout":    "3s",
		"events.redis_url":          "",
		"documents.uri_prefix":      "/documents",
		"documents.uri_strategy":    "counter",
		"documents.allow_overwrite": true,
		"documents.cache_ttl":       "5m",
	}
	for key, value := range defaults {
		_ = k.Set(key, value)
	}
}

func defaultFiles() []string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return []string{path}
	}
	var files []string
	for _, path := range []string{"config.yaml", "config.json"} {
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		parser = yaml.Parser()
	case strings.HasSuffix(path, ".json"):
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file type: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func transformEnv(key, value string) (string, any) {
	mapped, ok := envKeys[key]
	if !ok {
		return "", nil
	}
	return mapped, value
}

func validate(cfg *Config) error {
	for name, port := range map[string]int{
		"grpc.hello_port":    cfg.Grpc.HelloPort,
		"grpc.document_port": cfg.Grpc.DocumentPort,
		"http.port":          cfg.Http.Port,
	} {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("%s out of range: %d", name, port)
		}
	}
	if cfg.Grpc.HelloPort == cfg.Grpc.DocumentPort {
		return fmt.Errorf("hello and document gRPC ports must differ")
	}
	switch cfg.Security.ErrorMode {
	case "detailed", "secure":
	default:
		return fmt.Errorf("unknown error mode: %q", cfg.Security.ErrorMode)
	}
	if !strings.HasPrefix(cfg.Documents.URIPrefix, "/") {
		return fmt.Errorf("document uri prefix must start with '/': %q", cfg.Documents.URIPrefix)
	}
	switch cfg.Documents.URIStrategy {
	case "counter", "collection":
	default:
		return fmt.Errorf("unknown uri strategy: %q", cfg.Documents.URIStrategy)
	}
	if cfg.DocStore.ConnectTimeout <= 0 {
		return fmt.Errorf("docstore connect timeout must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}

// SecureErrors reports whether raw causes must be kept out of client-visible details.
func (c *Config) SecureErrors() bool {
	return c.Security.ErrorMode == "secure" || c.IsProduction()
}

func (c *Config) DocStoreAddr() string {
	return fmt.Sprintf("%s:%d", c.DocStore.Host, c.DocStore.Port)
}
