// Package config loads configuration structs from environment variables with
// github.com/caarlos0/env/v11 struct tags, reading a .env file through
// github.com/joho/godotenv when one exists.
//
// Load caches each struct type for the lifetime of the process, so packages
// can call it independently without re-parsing:
//
//	var srv httpserver.Config
//	config.MustLoad(&srv)
//
// Parse skips the cache and accepts options such as WithEnvironment, which
// makes it convenient in tests. All errors wrap ErrParsingConfig.
package config
