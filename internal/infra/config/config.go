package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env       string          `yaml:"env"       validate:"omitempty,oneof=dev prod"`
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Database  DatabaseConfig  `yaml:"database"  validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Saleor    SaleorConfig    `yaml:"saleor"    validate:"required"`
	Avatax    AvataxConfig    `yaml:"avatax"`
	Typesense TypesenseConfig `yaml:"typesense" validate:"required"`
	Notify    NotifyConfig    `yaml:"notify"`
	Sentry    SentryConfig    `yaml:"sentry"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Host string `yaml:"host" validate:"omitempty,ip|hostname"`
	Port int    `yaml:"port" validate:"required,min=1,max=65535"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	DSN    string `yaml:"dsn"    validate:"required"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key" validate:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
}

type MetricsConfig struct {
	Enable    bool   `yaml:"enable"`
	GoMetrics bool   `yaml:"go_metrics"`
	Path      string `yaml:"path"       validate:"omitempty,startswith=/"`
}

// SaleorConfig covers everything platform-side: the webhook signing secret
// and the registry of installed tenants with their app tokens.
type SaleorConfig struct {
	AppID         string         `yaml:"app_id"         validate:"required"`
	WebhookSecret string         `yaml:"webhook_secret" validate:"required"`
	Tenants       []TenantConfig `yaml:"tenants"        validate:"required,min=1,dive"`
}

// TenantConfig is one Saleor installation of the app.
type TenantConfig struct {
	APIURL string `yaml:"api_url" validate:"required,url"`
	Token  string `yaml:"token"   validate:"required"`
}

// AvataxConfig holds service-level provider settings. Per-tenant
// credentials live in the tenant's private metadata, not here.
type AvataxConfig struct {
	BaseURL        string `yaml:"base_url"        validate:"omitempty,url"`
	SandboxBaseURL string `yaml:"sandbox_base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"omitempty,min=1,max=120"`
}

type TypesenseConfig struct {
	URL                  string `yaml:"url"                    validate:"required,url"`
	APIKey               string `yaml:"api_key"                validate:"required"`
	Collection           string `yaml:"collection"`
	HealthTimeoutSeconds int    `yaml:"health_timeout_seconds" validate:"omitempty,min=1,max=60"`
	ImportPageSize       int    `yaml:"import_page_size"       validate:"omitempty,min=1,max=250"`
}

// NotifyConfig configures operational email alerts.
type NotifyConfig struct {
	Enable bool     `yaml:"enable"`
	APIKey string   `yaml:"api_key" validate:"required_if=Enable true"`
	From   string   `yaml:"from"    validate:"required_if=Enable true,omitempty,email"`
	To     []string `yaml:"to"      validate:"required_if=Enable true,dive,email"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

type TracingConfig struct {
	Endpoint string `yaml:"endpoint"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read file: %w", err)
	}

	// Expand environment variables in the config
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse yaml: %w", err)
	}

	applyDefaults(&cfg)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Env == "" {
		cfg.Env = "prod"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Avatax.BaseURL == "" {
		cfg.Avatax.BaseURL = "https://rest.avatax.com"
	}
	if cfg.Avatax.SandboxBaseURL == "" {
		cfg.Avatax.SandboxBaseURL = "https://sandbox-rest.avatax.com"
	}
	if cfg.Avatax.TimeoutSeconds == 0 {
		cfg.Avatax.TimeoutSeconds = 15
	}
	if cfg.Typesense.Collection == "" {
		cfg.Typesense.Collection = "products"
	}
	if cfg.Typesense.HealthTimeoutSeconds == 0 {
		cfg.Typesense.HealthTimeoutSeconds = 5
	}
	if cfg.Typesense.ImportPageSize == 0 {
		cfg.Typesense.ImportPageSize = 100
	}
}
