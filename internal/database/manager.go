package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBManager owns the primary pool and any read replicas. Reads round-robin
// across replicas and fall back to the primary when none are configured.
type DBManager struct {
	primary      *pgxpool.Pool
	replicas     []*pgxpool.Pool
	replicaIndex uint32
}

type Config struct {
	PrimaryDSN  string
	ReplicaDSNs []string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func NewDBManager(ctx context.Context, cfg Config) (*DBManager, error) {
	primaryPool, err := newPool(ctx, cfg, cfg.PrimaryDSN)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}

	replicas := make([]*pgxpool.Pool, 0, len(cfg.ReplicaDSNs))
	for i, dsn := range cfg.ReplicaDSNs {
		replicaPool, err := newPool(ctx, cfg, dsn)
		if err != nil {
			primaryPool.Close()
			closePools(replicas)
			return nil, fmt.Errorf("replica %d: %w", i, err)
		}
		replicas = append(replicas, replicaPool)
	}

	return &DBManager{
		primary:  primaryPool,
		replicas: replicas,
	}, nil
}

func newPool(ctx context.Context, cfg Config, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return pool, nil
}

func (m *DBManager) Write() *pgxpool.Pool {
	return m.primary
}

func (m *DBManager) Read() *pgxpool.Pool {
	if len(m.replicas) == 0 {
		return m.primary
	}

	idx := atomic.AddUint32(&m.replicaIndex, 1) % uint32(len(m.replicas))
	return m.replicas[idx]
}

func (m *DBManager) Close() {
	if m.primary != nil {
		m.primary.Close()
	}
	closePools(m.replicas)
}

func closePools(pools []*pgxpool.Pool) {
	for _, pool := range pools {
		if pool != nil {
			pool.Close()
		}
	}
}
