package config

import "time"

// Postgres holds the connection of the postgres dataset source.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}
