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
	memberColumns     = "id, name, email, phone, role, unit, registered_at, status"
	selectMemberQuery = "SELECT " + memberColumns + " FROM team_members WHERE id=$1"
	insertMemberQuery = `
INSERT INTO team_members(name, email, phone, role, unit, registered_at, status)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id`
	updateMemberQuery = `
UPDATE team_members SET name=$2, email=$3, phone=$4, role=$5, unit=$6, status=$7
WHERE id=$1`
	memberOptionsQuery = "SELECT id::text, name FROM team_members WHERE status=$1 ORDER BY id"

	selectMemberTasksQuery   = "SELECT member_id, id, title, status FROM member_tasks WHERE member_id = ANY($1) ORDER BY member_id, id"
	selectMemberHistoryQuery = "SELECT member_id, id, type, from_value, to_value, changed_at FROM member_history WHERE member_id = ANY($1) ORDER BY member_id, id"
	insertMemberTaskQuery    = "INSERT INTO member_tasks(member_id, id, title, status) VALUES ($1,$2,$3,$4)"
	insertHistoryQuery       = "INSERT INTO member_history(member_id, type, from_value, to_value, changed_at) VALUES ($1,$2,$3,$4,$5)"
)

func scanMember(s scanner) (entities.TeamMember, error) {
	var m entities.TeamMember
	err := s.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Role, &m.Unit, &m.RegisteredAt, &m.Status)
	m.Tasks = []entities.MemberTask{}
	m.History = []entities.HistoryItem{}
	return m, err
}

// ListMembers filters by status and searches name, email, role and unit.
func (p *Postgres) ListMembers(ctx context.Context, q listing.Query) (page listing.Page[entities.TeamMember], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "name", "email", "role", "unit")
		page, err = listPage(ctx, p.db, "team_members", memberColumns, "id", f, q, scanMember)
		if err != nil {
			return err
		}
		return p.attachMemberRelations(ctx, page.Items)
	})
	return page, err
}

// GetMember finds a member by id with tasks and history.
func (p *Postgres) GetMember(ctx context.Context, id int64) (res *entities.TeamMember, err error) {
	err = p.guard(func() error {
		m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrMemberNotFound
			}
			return fmt.Errorf("get member: %w", err)
		}
		members := []entities.TeamMember{m}
		if err := p.attachMemberRelations(ctx, members); err != nil {
			return err
		}
		res = &members[0]
		return nil
	})
	return res, err
}

// CreateMember inserts a member with its tasks and history.
func (p *Postgres) CreateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	var id int64
	err := p.guard(func() error {
		tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := tx.QueryRow(ctx, insertMemberQuery,
			m.Name, m.Email, m.Phone, m.Role, m.Unit, m.RegisteredAt, m.Status).Scan(&id); err != nil {
			return fmt.Errorf("insert member: %w", err)
		}
		for _, t := range m.Tasks {
			if _, err := tx.Exec(ctx, insertMemberTaskQuery, id, t.ID, t.Title, t.Status); err != nil {
				return fmt.Errorf("insert member task: %w", err)
			}
		}
		if err := insertHistory(ctx, tx, id, m.History); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}
	return p.GetMember(ctx, id)
}

// UpdateMember rewrites member fields and appends history items that have no id yet.
func (p *Postgres) UpdateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	err := p.guard(func() error {
		tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		tag, err := tx.Exec(ctx, updateMemberQuery, m.ID, m.Name, m.Email, m.Phone, m.Role, m.Unit, m.Status)
		if err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrMemberNotFound
		}

		fresh := make([]entities.HistoryItem, 0)
		for _, h := range m.History {
			if h.ID == 0 {
				fresh = append(fresh, h)
			}
		}
		if err := insertHistory(ctx, tx, m.ID, fresh); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}
	return p.GetMember(ctx, m.ID)
}

// MemberOptions returns id/name pairs of members with status.
func (p *Postgres) MemberOptions(ctx context.Context, status entities.ActiveStatus) (out []entities.Option, err error) {
	err = p.guard(func() error {
		out, err = queryOptions(ctx, p.db, memberOptionsQuery, status)
		return err
	})
	return out, err
}

func insertHistory(ctx context.Context, tx pgx.Tx, memberID int64, items []entities.HistoryItem) error {
	for _, h := range items {
		if _, err := tx.Exec(ctx, insertHistoryQuery, memberID, h.Type, h.From, h.To, h.Date); err != nil {
			return fmt.Errorf("insert member history: %w", err)
		}
	}
	return nil
}

func (p *Postgres) attachMemberRelations(ctx context.Context, members []entities.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(members))
	index := make(map[int64]int, len(members))
	for i, m := range members {
		ids = append(ids, m.ID)
		index[m.ID] = i
	}

	rows, err := p.db.Query(ctx, selectMemberTasksQuery, ids)
	if err != nil {
		return fmt.Errorf("member tasks: %w", err)
	}
	for rows.Next() {
		var memberID int64
		var t entities.MemberTask
		if err := rows.Scan(&memberID, &t.ID, &t.Title, &t.Status); err != nil {
			rows.Close()
			return fmt.Errorf("scan member task: %w", err)
		}
		i := index[memberID]
		members[i].Tasks = append(members[i].Tasks, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate member tasks: %w", err)
	}

	rows, err = p.db.Query(ctx, selectMemberHistoryQuery, ids)
	if err != nil {
		return fmt.Errorf("member history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var memberID int64
		var h entities.HistoryItem
		if err := rows.Scan(&memberID, &h.ID, &h.Type, &h.From, &h.To, &h.Date); err != nil {
			return fmt.Errorf("scan member history: %w", err)
		}
		i := index[memberID]
		members[i].History = append(members[i].History, h)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate member history: %w", err)
	}
	return nil
}
