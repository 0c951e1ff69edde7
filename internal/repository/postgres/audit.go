package postgres

import (
	"context"
	"fmt"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
)

const (
	auditColumns      = "id, user_name, action, module, ts, status"
	insertAuditQuery  = "INSERT INTO audit_trail(user_name, action, module, ts, status) VALUES ($1,$2,$3,$4,$5) RETURNING " + auditColumns
	auditBetweenQuery = "SELECT " + auditColumns + " FROM audit_trail WHERE ts BETWEEN $1 AND $2 ORDER BY ts DESC, id DESC"
)

func scanAudit(s scanner) (entities.AuditEntry, error) {
	var e entities.AuditEntry
	err := s.Scan(&e.ID, &e.User, &e.Action, &e.Module, &e.Timestamp, &e.Status)
	return e, err
}

// ListAudit returns entries newest first.
func (p *Postgres) ListAudit(ctx context.Context, q listing.Query) (page listing.Page[entities.AuditEntry], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "user_name", "action", "module")
		page, err = listPage(ctx, p.db, "audit_trail", auditColumns, "ts DESC, id DESC", f, q, scanAudit)
		return err
	})
	return page, err
}

// AppendAudit inserts an entry.
func (p *Postgres) AppendAudit(ctx context.Context, e entities.AuditEntry) (res *entities.AuditEntry, err error) {
	err = p.guard(func() error {
		created, err := scanAudit(p.db.QueryRow(ctx, insertAuditQuery, e.User, e.Action, e.Module, e.Timestamp, e.Status))
		if err != nil {
			return fmt.Errorf("insert audit: %w", err)
		}
		res = &created
		return nil
	})
	return res, err
}

// AuditBetween returns entries with from <= timestamp <= to, newest first.
func (p *Postgres) AuditBetween(ctx context.Context, from, to time.Time) (out []entities.AuditEntry, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, auditBetweenQuery, scanAudit, from, to)
		return err
	})
	return out, err
}
