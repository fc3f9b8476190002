package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `validate:"required,hostname_port"`
	GRPCAddr        string        `validate:"omitempty,hostname_port"`
	Debug           bool
	LogLevel        string        `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty       bool
	PriceProfile    string        `validate:"oneof=filtered minimal"`
	DefaultTrade    string        `validate:"omitempty,oneof=BUY SELL"`
	UpstreamURL     string        `validate:"omitempty,url"`
	UpstreamTimeout time.Duration `validate:"gt=0"`
	Countries       []string      `validate:"dive,required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads the environment, with an optional .env file for local runs.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	debug := getEnvBool("DEBUG", false)
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	upstreamTimeout, err := getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", "0.0.0.0:8000"),
		GRPCAddr:        getEnv("GRPC_ADDR", ""),
		Debug:           debug,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", logLevel)),
		LogPretty:       getEnvBool("LOG_PRETTY", false),
		PriceProfile:    strings.ToLower(getEnv("PRICE_PROFILE", "filtered")),
		DefaultTrade:    strings.ToUpper(getEnv("DEFAULT_TRADE_TYPE", "")),
		UpstreamURL:     getEnv("UPSTREAM_URL", ""),
		UpstreamTimeout: upstreamTimeout,
		Countries:       getEnvList("UPSTREAM_COUNTRIES", []string{"VN"}),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// comma separated; an explicitly empty value means no entries
func getEnvList(key string, defaultValue []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToUpper(part))
		}
	}
	return out
}
