package config

type Config interface {
}

// DatabaseConfig is satisfied by any store configuration that can
// produce a driver connection string.
type DatabaseConfig interface {
	GetConnectionString() string
}
