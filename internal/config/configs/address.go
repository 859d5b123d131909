package configs

// Address is the environment-sourced bind address candidate. It is decoded
// both from the process environment and from a .env override file.
type Address struct {
	Address string `env:"ADDRESS"`
}
