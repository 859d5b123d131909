package configs

// DefaultFilePath is the config file consulted when --config is not given.
const DefaultFilePath = "random_service.toml"

// File is the TOML config file. address is its only recognised key.
type File struct {
	Address string `toml:"address"`
}
