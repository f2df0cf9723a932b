// Package xpgx is a thin convenience layer over pgxpool for executing
// squirrel builders and scanning rows into db-tagged structs.
package xpgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

// Pool wraps a pgx connection pool.
type Pool struct {
	*pgxpool.Pool
}

// NewPool connects to Postgres and verifies the connection.
func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Pool{pool}, nil
}

// Execx builds and executes a squirrel query.
func (p *Pool) Execx(ctx context.Context, q Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.Exec(ctx, sql, args...)
}

// Getx runs the query and scans exactly one row into *T.
func Getx[T any](ctx context.Context, p *Pool, q Sqlizer) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx runs the query and scans all rows into []*T.
func Selectx[T any](ctx context.Context, p *Pool, q Sqlizer) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// GetScalarx runs the query and scans a single-column row into T.
func GetScalarx[T any](ctx context.Context, p *Pool, q Sqlizer) (T, error) {
	var zero T

	sql, args, err := q.ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	val, err := pgx.CollectOneRow(rows, pgx.RowTo[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, nil
		}
		return zero, err
	}
	return val, nil
}
