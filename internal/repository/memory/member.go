package memory

import (
	"context"
	"strconv"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListMembers filters by status and searches name, email, role and unit.
func (m *Memory) ListMembers(_ context.Context, q listing.Query) (listing.Page[entities.TeamMember], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page := listing.Apply(m.members, q, func(mb entities.TeamMember) bool {
		return q.MatchStatus(string(mb.Status)) && q.MatchSearch(mb.Name, mb.Email, mb.Role, mb.Unit)
	})
	return listing.Map(page, cloneMember), nil
}

// GetMember finds a member by id.
func (m *Memory) GetMember(_ context.Context, id int64) (*entities.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mb := range m.members {
		if mb.ID == id {
			mb := cloneMember(mb)
			return &mb, nil
		}
	}
	return nil, entities.ErrMemberNotFound
}

// CreateMember stores a member under a new id.
func (m *Memory) CreateMember(_ context.Context, mb entities.TeamMember) (*entities.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mb.ID = m.next("member")
	m.numberHistory(mb.History)
	m.members = append(m.members, cloneMember(mb))
	out := cloneMember(mb)
	return &out, nil
}

// UpdateMember replaces the member with the same id. History items without
// an id get one.
func (m *Memory) UpdateMember(_ context.Context, mb entities.TeamMember) (*entities.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.members {
		if existing.ID == mb.ID {
			mb.RegisteredAt = existing.RegisteredAt
			mb = cloneMember(mb)
			m.numberHistory(mb.History)
			m.members[i] = mb
			out := cloneMember(mb)
			return &out, nil
		}
	}
	return nil, entities.ErrMemberNotFound
}

// MemberOptions returns id/name pairs of members with status.
func (m *Memory) MemberOptions(_ context.Context, status entities.ActiveStatus) ([]entities.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Option, 0)
	for _, mb := range m.members {
		if mb.Status == status {
			out = append(out, entities.Option{ID: strconv.FormatInt(mb.ID, 10), Name: mb.Name})
		}
	}
	return out, nil
}

func (m *Memory) numberHistory(items []entities.HistoryItem) {
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = m.next("history")
		}
	}
}
