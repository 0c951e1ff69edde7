package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type scanner interface {
	Scan(dest ...any) error
}

// filter collects WHERE conditions. Every "?" in a condition becomes the
// placeholder of the argument added with it.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(f.args))))
}

func (f *filter) raw(cond string) {
	f.conds = append(f.conds, cond)
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// listFilter applies status equality and a case-insensitive substring match
// over searchCols.
func listFilter(q listing.Query, statusCol string, searchCols ...string) *filter {
	f := &filter{}
	if q.Status != "" {
		f.add(statusCol+" = ?", q.Status)
	}
	if q.Search != "" && len(searchCols) > 0 {
		parts := make([]string, 0, len(searchCols))
		for _, c := range searchCols {
			parts = append(parts, c+" ILIKE ?")
		}
		f.add("("+strings.Join(parts, " OR ")+")", "%"+escapeLike(q.Search)+"%")
	}
	return f
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// listPage counts matching rows and reads one page of them.
func listPage[T any](
	ctx context.Context,
	db *pgxpool.Pool,
	table, cols, order string,
	f *filter,
	q listing.Query,
	scan func(scanner) (T, error),
) (listing.Page[T], error) {
	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, f.where())
	if err := db.QueryRow(ctx, countSQL, f.args...).Scan(&total); err != nil {
		return listing.Page[T]{}, fmt.Errorf("count %s: %w", table, err)
	}

	args := append(append([]any{}, f.args...), q.PageSize, q.Offset())
	pageSQL := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		cols, table, f.where(), order, len(args)-1, len(args))

	items, err := queryAll(ctx, db, pageSQL, scan, args...)
	if err != nil {
		return listing.Page[T]{}, fmt.Errorf("list %s: %w", table, err)
	}
	return listing.NewPage(items, total, q), nil
}

func queryAll[T any](ctx context.Context, db *pgxpool.Pool, sql string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return out, nil
}

func queryOptions(ctx context.Context, db *pgxpool.Pool, sql string, args ...any) ([]entities.Option, error) {
	return queryAll(ctx, db, sql, func(s scanner) (entities.Option, error) {
		var o entities.Option
		err := s.Scan(&o.ID, &o.Name)
		return o, err
	}, args...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// textArray keeps nil slices from being stored as NULL arrays.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
