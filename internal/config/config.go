package config

import (
	"github.com/caarlos0/env/v11"

	"random-service/internal/config/configs"
)

// Config aggregates the ambient configuration sections for the service.
// Fields are populated from environment variables using the caarlos0/env
// library. The nested structs are tagged with envPrefix so their fields are
// parsed with the given prefix. The bind address is deliberately absent:
// it is resolved separately by ResolveAddress. Use Load to construct a
// Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to the startup log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds timeouts for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment. A nil map means the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
