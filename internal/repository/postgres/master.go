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
	masterColumns     = "id, kind, name, status, icon, created_at, created_by"
	selectMasterQuery = "SELECT " + masterColumns + " FROM master_items WHERE kind=$1 AND id=$2"
	insertMasterQuery = `
INSERT INTO master_items(kind, name, status, icon, created_at, created_by)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + masterColumns
	updateMasterQuery = `
UPDATE master_items SET name=$3, status=$4, icon=$5
WHERE kind=$1 AND id=$2
RETURNING ` + masterColumns
	masterOptionsQuery = "SELECT id::text, name FROM master_items WHERE kind=$1 AND status=$2 ORDER BY id"
)

func scanMaster(s scanner) (entities.MasterItem, error) {
	var it entities.MasterItem
	err := s.Scan(&it.ID, &it.Kind, &it.Name, &it.Status, &it.Icon, &it.CreatedAt, &it.CreatedBy)
	return it, err
}

// ListMaster returns items of kind, newest first.
func (p *Postgres) ListMaster(ctx context.Context, kind entities.MasterKind, q listing.Query) (page listing.Page[entities.MasterItem], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "name")
		f.add("kind = ?", kind)
		page, err = listPage(ctx, p.db, "master_items", masterColumns, "id DESC", f, q, scanMaster)
		return err
	})
	return page, err
}

// GetMaster finds an item of kind by id.
func (p *Postgres) GetMaster(ctx context.Context, kind entities.MasterKind, id int64) (*entities.MasterItem, error) {
	return p.masterRow(ctx, "get master item", selectMasterQuery, kind, id)
}

// CreateMaster inserts an item. Names are unique per kind ignoring case.
func (p *Postgres) CreateMaster(ctx context.Context, it entities.MasterItem) (*entities.MasterItem, error) {
	return p.masterRow(ctx, "insert master item", insertMasterQuery,
		it.Kind, it.Name, it.Status, it.Icon, it.CreatedAt, it.CreatedBy)
}

// UpdateMaster rewrites the name, status and icon of an item.
func (p *Postgres) UpdateMaster(ctx context.Context, it entities.MasterItem) (*entities.MasterItem, error) {
	return p.masterRow(ctx, "update master item", updateMasterQuery, it.Kind, it.ID, it.Name, it.Status, it.Icon)
}

// MasterOptions returns id/name pairs of items of kind with status.
func (p *Postgres) MasterOptions(ctx context.Context, kind entities.MasterKind, status entities.ActiveStatus) (out []entities.Option, err error) {
	err = p.guard(func() error {
		out, err = queryOptions(ctx, p.db, masterOptionsQuery, kind, status)
		return err
	})
	return out, err
}

func (p *Postgres) masterRow(ctx context.Context, op, query string, args ...any) (res *entities.MasterItem, err error) {
	err = p.guard(func() error {
		it, err := scanMaster(p.db.QueryRow(ctx, query, args...))
		if err != nil {
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				return entities.ErrMasterItemNotFound
			case isUniqueViolation(err):
				return entities.ErrConflict
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		res = &it
		return nil
	})
	return res, err
}
