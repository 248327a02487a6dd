package connectors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"house_classifier/pkg/logx"
)

var ErrNotConnected = errors.New("postgres: not connected")

// Postgres lazily connects to the database holding the training table. A
// failed connect is returned to the caller and retried on the next call.
type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	mu              sync.Mutex
}

func (p *Postgres) Client(ctx context.Context) (*sqlx.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value != nil {
		return p.value, nil
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", p.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext %s: %w", p.database(), err)
	}

	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)

	p.value = db

	logger(ctx).Info("postgres connected", slog.String("database", p.database()))

	return p.value, nil
}

// Ping is the readiness check of the dataset database. It never connects.
func (p *Postgres) Ping(ctx context.Context) error {
	p.mu.Lock()
	db := p.value
	p.mu.Unlock()

	if db == nil {
		return ErrNotConnected
	}

	return db.PingContext(ctx) //nolint:wrapcheck
}

func (p *Postgres) Close(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	p.value = nil

	logger(ctx).Info("postgres disconnected", slog.String("database", p.database()))
}

func (p *Postgres) database() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return ""
	}

	return u.Path
}
