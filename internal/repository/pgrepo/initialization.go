package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	maxConnectAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// ConnectArgs параметры подключения к postgres.
type ConnectArgs struct {
	DSN           string
	MigrationsDir string
	// MaxConns ограничение размера пула, 0 оставляет значение pgxpool по умолчанию.
	MaxConns int32
	// PingTimeout таймаут проверки соединения на каждой попытке.
	PingTimeout time.Duration
}

// Connect подключается к postgres, повторяя попытки пока база не станет доступна, и применяет миграции из
// MigrationsDir.
func Connect(ctx context.Context, args ConnectArgs, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint
	for {
		conn, connErr := newPostgresConnection(ctx, args)
		if connErr == nil {
			if err := postgresMigrate(args.MigrationsDir, args.DSN); err != nil {
				conn.Close()
				return nil, err
			}
			return conn, nil
		}

		attempts++
		if attempts >= maxConnectAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %s", attempts, connErr.Error())
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, maxConnectAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(connectRetryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, args ConnectArgs) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(args.DSN)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	if args.MaxConns > 0 {
		poolConfig.MaxConns = args.MaxConns
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	pingCtx := ctx
	if args.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, args.PingTimeout)
		defer cancel()
	}
	if pingErr := pool.Ping(pingCtx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
