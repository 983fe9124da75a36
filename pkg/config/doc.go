// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	if err := config.LoadEnv(envFile); err != nil {
//		return err
//	}
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches one parsed copy per type, so later calls are cheap and return
// the same values. Parse skips the cache. ResetCache clears it between tests.
package config
