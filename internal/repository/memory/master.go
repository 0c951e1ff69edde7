package memory

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListMaster returns items of kind, newest first.
func (m *Memory) ListMaster(_ context.Context, kind entities.MasterKind, q listing.Query) (listing.Page[entities.MasterItem], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]entities.MasterItem, 0)
	for _, it := range m.master {
		if it.Kind == kind {
			items = append(items, it)
		}
	}
	slices.Reverse(items)
	return listing.Apply(items, q, func(it entities.MasterItem) bool {
		return q.MatchStatus(string(it.Status)) && q.MatchSearch(it.Name)
	}), nil
}

// GetMaster finds an item of kind by id.
func (m *Memory) GetMaster(_ context.Context, kind entities.MasterKind, id int64) (*entities.MasterItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, it := range m.master {
		if it.Kind == kind && it.ID == id {
			return &it, nil
		}
	}
	return nil, entities.ErrMasterItemNotFound
}

// CreateMaster stores an item. Names are unique per kind ignoring case.
func (m *Memory) CreateMaster(_ context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameTaken(item.Kind, item.Name, 0) {
		return nil, entities.ErrConflict
	}
	item.ID = m.next("master")
	m.master = append(m.master, item)
	return &item, nil
}

// UpdateMaster replaces the item with the same kind and id.
func (m *Memory) UpdateMaster(_ context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.master {
		if existing.Kind != item.Kind || existing.ID != item.ID {
			continue
		}
		if m.nameTaken(item.Kind, item.Name, item.ID) {
			return nil, entities.ErrConflict
		}
		item.CreatedAt = existing.CreatedAt
		item.CreatedBy = existing.CreatedBy
		m.master[i] = item
		return &item, nil
	}
	return nil, entities.ErrMasterItemNotFound
}

// MasterOptions returns id/name pairs of items of kind with status.
func (m *Memory) MasterOptions(_ context.Context, kind entities.MasterKind, status entities.ActiveStatus) ([]entities.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Option, 0)
	for _, it := range m.master {
		if it.Kind == kind && it.Status == status {
			out = append(out, entities.Option{ID: strconv.FormatInt(it.ID, 10), Name: it.Name})
		}
	}
	return out, nil
}

func (m *Memory) nameTaken(kind entities.MasterKind, name string, except int64) bool {
	name = strings.TrimSpace(name)
	for _, it := range m.master {
		if it.Kind == kind && it.ID != except && strings.EqualFold(strings.TrimSpace(it.Name), name) {
			return true
		}
	}
	return false
}
