package memory

import (
	"context"
	"slices"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListAccounts returns accounts newest first.
func (m *Memory) ListAccounts(_ context.Context, q listing.Query) (listing.Page[entities.Account], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := slices.Clone(m.accounts)
	slices.Reverse(items)
	return listing.Apply(items, q, func(a entities.Account) bool {
		return q.MatchStatus(string(a.Status)) && q.MatchSearch(a.Name, a.Email, a.Role)
	}), nil
}

// GetAccount finds an account by id.
func (m *Memory) GetAccount(_ context.Context, id int64) (*entities.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.accounts {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, entities.ErrAccountNotFound
}

// CreateAccount stores an account. Emails are unique ignoring case.
func (m *Memory) CreateAccount(_ context.Context, a entities.Account) (*entities.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTaken(a.Email, 0) {
		return nil, entities.ErrConflict
	}
	a.ID = m.next("account")
	m.accounts = append(m.accounts, a)
	return &a, nil
}

// UpdateAccount replaces the account with the same id.
func (m *Memory) UpdateAccount(_ context.Context, a entities.Account) (*entities.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.accounts {
		if existing.ID != a.ID {
			continue
		}
		if m.emailTaken(a.Email, a.ID) {
			return nil, entities.ErrConflict
		}
		m.accounts[i] = a
		return &a, nil
	}
	return nil, entities.ErrAccountNotFound
}

func (m *Memory) emailTaken(email string, except int64) bool {
	for _, a := range m.accounts {
		if a.ID != except && strings.EqualFold(a.Email, email) {
			return true
		}
	}
	return false
}
