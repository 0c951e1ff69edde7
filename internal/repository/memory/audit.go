package memory

import (
	"context"
	"slices"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListAudit returns entries newest first.
func (m *Memory) ListAudit(_ context.Context, q listing.Query) (listing.Page[entities.AuditEntry], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listing.Apply(m.sortedAudit(), q, func(e entities.AuditEntry) bool {
		return q.MatchStatus(string(e.Status)) && q.MatchSearch(e.User, e.Action, e.Module)
	}), nil
}

// AppendAudit stores an entry under a new id.
func (m *Memory) AppendAudit(_ context.Context, e entities.AuditEntry) (*entities.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.next("audit")
	m.audit = append(m.audit, e)
	return &e, nil
}

// AuditBetween returns entries with from <= timestamp <= to, newest first.
func (m *Memory) AuditBetween(_ context.Context, from, to time.Time) ([]entities.AuditEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.AuditEntry, 0)
	for _, e := range m.sortedAudit() {
		if !e.Timestamp.Before(from) && !e.Timestamp.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) sortedAudit() []entities.AuditEntry {
	items := slices.Clone(m.audit)
	slices.SortStableFunc(items, func(a, b entities.AuditEntry) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return items
}
