// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and github.com/caarlos0/env/v11
// for struct parsing. Each configuration type is parsed once and cached; Reload and
// ResetCache exist for tests that change the environment.
//
//	type EmailConfig struct {
//	    Provider string `env:"EMAIL_PROVIDER" envDefault:"sendmail"`
//	    Sender   string `env:"SENDER_EMAIL,required"`
//	}
//
//	if err := config.LoadEnv("santa.env"); err != nil { ... }
//	var cfg EmailConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// Errors can be matched with errors.Is against ErrParsingConfig, ErrInvalidConfigType,
// ErrNilPointer and ErrLoadingEnvFile.
package config
