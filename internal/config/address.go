package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"

	"random-service/internal/config/configs"
	"random-service/internal/core/domain"
)

// DefaultDotEnvPath is the local override file consulted for ADDRESS.
const DefaultDotEnvPath = ".env"

// ErrConfigFile is returned when the TOML config file cannot be read or
// decoded.
var ErrConfigFile = errors.New("can't read config file")

// Candidate is one optional source of the bind address. Lookup reports
// whether the source produced a value; it is only called when every
// higher-precedence candidate was absent or invalid.
type Candidate struct {
	Name   string
	Lookup func() (string, bool)
}

// Resolve walks candidates in order and returns the first value that is
// present and parses as a socket address. Invalid values are logged and
// skipped. When nothing matches, domain.DefaultAddress is returned, so
// Resolve never fails.
func Resolve(log *slog.Logger, candidates ...Candidate) domain.Address {
	for _, c := range candidates {
		raw, ok := c.Lookup()
		if !ok {
			log.Debug("address candidate absent", slog.String("source", c.Name))
			continue
		}
		addr, err := domain.ParseAddress(raw)
		if err != nil {
			log.Warn("address candidate ignored",
				slog.String("source", c.Name), slog.Any("error", err))
			continue
		}
		log.Debug("address candidate selected",
			slog.String("source", c.Name), slog.String("address", addr.String()))
		return addr
	}
	log.Debug("using default address", slog.String("address", domain.DefaultAddress.String()))
	return domain.DefaultAddress
}

// Sources describes where the bind address candidates come from, highest
// precedence first: command-line flag, process environment, .env file,
// config file.
type Sources struct {
	// Flag is the --address value; FlagSet reports whether it was given.
	Flag    string
	FlagSet bool

	// Environ overrides the process environment. Nil means os.Environ.
	Environ map[string]string

	// DotEnvPath is the .env override file. Empty means DefaultDotEnvPath.
	DotEnvPath string

	// ConfigPath is the TOML config file. Empty means
	// configs.DefaultFilePath.
	ConfigPath string
}

// ResolveAddress resolves the bind address from s. It never fails; read
// and parse problems with any source are logged and treated as absence.
func ResolveAddress(log *slog.Logger, s Sources) domain.Address {
	return Resolve(log, s.Candidates(log)...)
}

// Candidates returns the lazily evaluated candidate list for s.
func (s Sources) Candidates(log *slog.Logger) []Candidate {
	dotEnvPath := s.DotEnvPath
	if dotEnvPath == "" {
		dotEnvPath = DefaultDotEnvPath
	}
	configPath := s.ConfigPath
	if configPath == "" {
		configPath = configs.DefaultFilePath
	}

	return []Candidate{
		{
			Name:   "flag",
			Lookup: func() (string, bool) { return s.Flag, s.FlagSet },
		},
		{
			Name:   "env",
			Lookup: func() (string, bool) { return lookupEnv(log, s.Environ) },
		},
		{
			Name:   "dotenv",
			Lookup: func() (string, bool) { return lookupDotEnv(log, dotEnvPath) },
		},
		{
			Name:   "config",
			Lookup: func() (string, bool) { return lookupConfigFile(log, configPath) },
		},
	}
}

func lookupEnv(log *slog.Logger, environ map[string]string) (string, bool) {
	var a configs.Address
	if err := env.ParseWithOptions(&a, env.Options{Environment: environ}); err != nil {
		log.Warn("can't read ADDRESS from environment", slog.Any("error", err))
		return "", false
	}
	return a.Address, a.Address != ""
}

func lookupDotEnv(log *slog.Logger, path string) (string, bool) {
	vars, err := gotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no .env file", slog.String("path", path))
		} else {
			log.Warn("can't read .env file", slog.String("path", path), slog.Any("error", err))
		}
		return "", false
	}

	var a configs.Address
	if err = env.ParseWithOptions(&a, env.Options{Environment: vars}); err != nil {
		log.Warn("can't read ADDRESS from .env file", slog.String("path", path), slog.Any("error", err))
		return "", false
	}
	return a.Address, a.Address != ""
}

func lookupConfigFile(log *slog.Logger, path string) (string, bool) {
	f, defined, err := LoadFile(path)
	if err != nil {
		log.Warn("config file ignored", slog.Any("error", err))
		return "", false
	}
	return f.Address, defined
}

// LoadFile decodes the TOML config file at path. defined reports whether
// the address key was present. Unknown keys are ignored.
func LoadFile(path string) (f configs.File, defined bool, err error) {
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return configs.File{}, false, fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
	}
	return f, md.IsDefined("address"), nil
}
