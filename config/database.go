package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DBTypePostgres = "postgres"
	DBTypeSupabase = "supa"
	DBTypeSQLite   = "sqlite"
)

// DatabaseConfig selects and locates the content store. The supa type reads
// the SUPABASE_DB_* variables, postgres the DB_* ones.
type DatabaseConfig struct {
	Type       string `env:"DB_TYPE" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	User       string `env:"DB_USER"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"portfolio"`
	Port       int    `env:"DB_PORT" envDefault:"5432"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	ReplicaDSN string `env:"DB_REPLICA_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"portfolio.db"`

	Supabase SupabaseConfig `envPrefix:"SUPABASE_DB_"`
}

type SupabaseConfig struct {
	Host     string `env:"HOST"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	Port     int    `env:"PORT" envDefault:"5432"`
}

// LoadDatabase parses the database settings from the environment
func LoadDatabase() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Type {
	case DBTypePostgres, DBTypeSupabase, DBTypeSQLite:
	default:
		return cfg, fmt.Errorf("unsupported DB_TYPE %q", cfg.Type)
	}
	return cfg, nil
}

// PostgresDSN builds the connection string for the postgres and supa types
func (c DatabaseConfig) PostgresDSN() string {
	if c.Type == DBTypeSupabase {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=require",
			c.Supabase.Host, c.Supabase.User, c.Supabase.Password, c.Supabase.Name, c.Supabase.Port)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
