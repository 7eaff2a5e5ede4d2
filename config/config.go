package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chart generation
	Gantt    GanttConfig
	Document DocumentConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	MaxBodyBytes    int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig bounds generation requests per client IP.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// GanttConfig tunes the generation pipeline.
type GanttConfig struct {
	Reconcile   bool
	Temperature float64
	MaxTokens   int
}

// DocumentConfig bounds reference documents read from disk.
type DocumentConfig struct {
	MaxBytes    int64
	Concurrency int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers" yaml:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled" yaml:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts" yaml:"retry_attempts"`
	RetryDelay      string           `mapstructure:"retry_delay" yaml:"retry_delay"`
	MaxTotalTimeout string           `mapstructure:"max_total_timeout" yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Priority int    `mapstructure:"priority" yaml:"priority"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL  string `mapstructure:"base_url" yaml:"base_url,omitempty"`
	Model    string `mapstructure:"model" yaml:"model"`
	Timeout  string `mapstructure:"timeout" yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/gantt/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths
// when path is empty. A missing default config file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/gantt/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxBodyBytes = v.GetInt64("http_server.max_body_bytes")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	if port := v.GetInt("port"); port > 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	cfg.Gantt.Reconcile = v.GetBool("gantt.reconcile")
	cfg.Gantt.Temperature = v.GetFloat64("gantt.temperature")
	cfg.Gantt.MaxTokens = v.GetInt("gantt.max_tokens")

	cfg.Document.MaxBytes = v.GetInt64("document.max_bytes")
	cfg.Document.Concurrency = v.GetInt("document.concurrency")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	providers, err := decodeProviders(v.Get("llm.providers"))
	if err != nil {
		return nil, err
	}
	for i := range providers {
		providers[i].APIKey = expandEnvVar(v, providers[i].APIKey)
	}
	if len(providers) == 0 {
		providers = providersFromEnv(v)
	}
	cfg.LLM.Providers = providers

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.max_body_bytes", 10<<20)
	v.SetDefault("http_server.read_timeout", "15s")
	v.SetDefault("http_server.write_timeout", "120s")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst", 5)

	v.SetDefault("gantt.reconcile", true)
	v.SetDefault("gantt.temperature", 0.7)
	v.SetDefault("gantt.max_tokens", 4096)

	v.SetDefault("document.max_bytes", 5<<20)
	v.SetDefault("document.concurrency", 4)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "90s")
}

// decodeProviders decodes the llm.providers list. String values from env or
// YAML are converted to the field types.
func decodeProviders(raw any) ([]ProviderConfig, error) {
	if raw == nil {
		return nil, nil
	}

	var providers []ProviderConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &providers,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid llm.providers: %w", err)
	}
	return providers, nil
}

// providersFromEnv builds a provider list from GEMINI_API_KEY and
// OPENAI_API_KEY. Gemini is tried first when both are set.
func providersFromEnv(v *viper.Viper) []ProviderConfig {
	var providers []ProviderConfig
	if key := lookupEnv(v, "GEMINI_API_KEY"); key != "" {
		providers = append(providers, ProviderConfig{
			Name: "gemini", Enabled: true, Priority: 1, APIKey: key,
			Model: lookupEnv(v, "GEMINI_MODEL"),
		})
	}
	if key := lookupEnv(v, "OPENAI_API_KEY"); key != "" {
		providers = append(providers, ProviderConfig{
			Name: "openai", Enabled: true, Priority: 2, APIKey: key,
			Model: lookupEnv(v, "OPENAI_MODEL"), BaseURL: lookupEnv(v, "OPENAI_BASE_URL"),
		})
	}
	return providers
}

func lookupEnv(v *viper.Viper, name string) string {
	if val := v.GetString(strings.ToLower(name)); val != "" {
		return val
	}
	return os.Getenv(name)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	return lookupEnv(v, value[2:len(value)-1])
}

// validateLLMConfig validates the LLM configuration. An empty provider list is
// allowed: rendering and classification work without a model.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	for _, d := range []struct{ key, val string }{
		{"llm.retry_delay", cfg.RetryDelay},
		{"llm.max_total_timeout", cfg.MaxTotalTimeout},
	} {
		if _, err := time.ParseDuration(d.val); d.val != "" && err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}

	return nil
}

// EnabledProviders returns the enabled providers sorted by priority.
func (c LLMConfig) EnabledProviders() []ProviderConfig {
	var out []ProviderConfig
	for _, p := range c.Providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// Durations parses RetryDelay and MaxTotalTimeout. Empty values are zero.
func (c LLMConfig) Durations() (retryDelay, maxTotal time.Duration) {
	retryDelay, _ = time.ParseDuration(c.RetryDelay)
	maxTotal, _ = time.ParseDuration(c.MaxTotalTimeout)
	return retryDelay, maxTotal
}
