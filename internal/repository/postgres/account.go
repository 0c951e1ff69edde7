package postgres

import (
	"context"
	"errors"
	"fmt"

	"workio/internal/entities"
	"workio/internal/listing"

	"github.com/jackc/pgx/v5"
)

const (
	accountColumns     = "id, name, email, role, status"
	selectAccountQuery = "SELECT " + accountColumns + " FROM accounts WHERE id=$1"
	insertAccountQuery = "INSERT INTO accounts(name, email, role, status) VALUES ($1,$2,$3,$4) RETURNING " + accountColumns
	updateAccountQuery = "UPDATE accounts SET name=$2, email=$3, role=$4, status=$5 WHERE id=$1 RETURNING " + accountColumns
)

func scanAccount(s scanner) (entities.Account, error) {
	var a entities.Account
	err := s.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &a.Status)
	return a, err
}

// ListAccounts returns accounts newest first.
func (p *Postgres) ListAccounts(ctx context.Context, q listing.Query) (page listing.Page[entities.Account], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "name", "email", "role")
		page, err = listPage(ctx, p.db, "accounts", accountColumns, "id DESC", f, q, scanAccount)
		return err
	})
	return page, err
}

// GetAccount finds an account by id.
func (p *Postgres) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	return p.accountRow(ctx, "get account", selectAccountQuery, id)
}

// CreateAccount inserts an account. Emails are unique ignoring case.
func (p *Postgres) CreateAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	return p.accountRow(ctx, "insert account", insertAccountQuery, a.Name, a.Email, a.Role, a.Status)
}

// UpdateAccount rewrites an account by id.
func (p *Postgres) UpdateAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	return p.accountRow(ctx, "update account", updateAccountQuery, a.ID, a.Name, a.Email, a.Role, a.Status)
}

func (p *Postgres) accountRow(ctx context.Context, op, query string, args ...any) (res *entities.Account, err error) {
	err = p.guard(func() error {
		a, err := scanAccount(p.db.QueryRow(ctx, query, args...))
		if err != nil {
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				return entities.ErrAccountNotFound
			case isUniqueViolation(err):
				return entities.ErrConflict
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		res = &a
		return nil
	})
	return res, err
}
