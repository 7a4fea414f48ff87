// Package config reads process configuration from the environment. A local
// .env file is honored when present.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Environment names the deployment tier.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config is the full process configuration.
type Config struct {
	Environment Environment
	Addr        string
	DatabaseDSN string
	// SeedDemoData loads the demo dataset into an empty store on startup.
	SeedDemoData bool
	OTLPEndpoint string
}

// Module provides the configuration to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// Load reads configuration, applying defaults suitable for local use.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:  EnvDevelopment,
		Addr:         ":8080",
		DatabaseDSN:  "billfold.db",
		SeedDemoData: true,
	}

	if env := strings.TrimSpace(os.Getenv("BILLFOLD_ENV")); env != "" {
		cfg.Environment = Environment(env)
	}
	if addr := strings.TrimSpace(os.Getenv("BILLFOLD_ADDR")); addr != "" {
		cfg.Addr = addr
	}
	if dsn := strings.TrimSpace(os.Getenv("BILLFOLD_DB")); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if seed := strings.TrimSpace(os.Getenv("BILLFOLD_SEED_DEMO")); seed != "" {
		parsed, err := strconv.ParseBool(seed)
		if err == nil {
			cfg.SeedDemoData = parsed
		}
	}
	cfg.OTLPEndpoint = strings.TrimSpace(os.Getenv("BILLFOLD_OTLP_ENDPOINT"))

	if cfg.Environment == EnvProduction {
		cfg.SeedDemoData = false
	}
	return cfg, nil
}
