package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Output OutputConfig
	Limits LimitsConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// OutputConfig holds generated-file settings.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LimitsConfig holds submission limits.
type LimitsConfig struct {
	MaxMovimientosPorEmpresa int `mapstructure:"max_movimientos_por_empresa"`
	MaxEmpresasPorBatch      int `mapstructure:"max_empresas_por_batch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the IDSE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IDSE")
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Output defaults
	v.SetDefault("output.dir", "output")

	// Limits defaults
	v.SetDefault("limits.max_movimientos_por_empresa", 1000)
	v.SetDefault("limits.max_empresas_por_batch", 100)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                        "IDSE_SERVER_PORT",
		"server.read_timeout":                "IDSE_SERVER_READ_TIMEOUT",
		"server.write_timeout":               "IDSE_SERVER_WRITE_TIMEOUT",
		"server.environment":                 "IDSE_SERVER_ENVIRONMENT",
		"output.dir":                         "IDSE_OUTPUT_DIR",
		"limits.max_movimientos_por_empresa": "IDSE_LIMITS_MAX_MOVIMIENTOS_POR_EMPRESA",
		"limits.max_empresas_por_batch":      "IDSE_LIMITS_MAX_EMPRESAS_POR_BATCH",
		"log.level":                          "IDSE_LOG_LEVEL",
		"log.format":                         "IDSE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Limits: LimitsConfig{
			MaxMovimientosPorEmpresa: v.GetInt("limits.max_movimientos_por_empresa"),
			MaxEmpresasPorBatch:      v.GetInt("limits.max_empresas_por_batch"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	return cfg, nil
}
