package config

import "time"

const (
	dotEnvFile = ".env"

	DefaultHTTPAddress      = "localhost:3000"
	DefaultAllowedOrigin    = "http://localhost:5173"
	DefaultTokenIssuer      = "go-phone-auth"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultDBDriver         = "postgres"
	DefaultDBMaxOpenConns   = 10
	DefaultLogLevel         = "debug"
	DefaultVersion          = "N/A"
)

// Defaults returns the values used for every field left empty by all other
// configuration sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDBDriver,
				MaxOpenConns: DefaultDBMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:   DefaultHTTPAddress,
			AllowedOrigin: DefaultAllowedOrigin,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
