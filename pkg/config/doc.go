// Package config loads typed configuration structs from environment
// variables, with an optional .env file picked up once per process.
//
// Each configuration type is parsed once and cached; packages declare their
// own Config structs with `env:` tags and call Load at startup.
//
//	type Config struct {
//	    BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
package config
