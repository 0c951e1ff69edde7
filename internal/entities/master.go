// Package entities contains core business entities.
package entities

import "time"

// MasterKind distinguishes reference data sets.
type MasterKind string

const (
	KindRole     MasterKind = "role"
	KindUnit     MasterKind = "unit"
	KindCategory MasterKind = "category"
)

// Valid reports whether k is a known value.
func (k MasterKind) Valid() bool {
	switch k {
	case KindRole, KindUnit, KindCategory:
		return true
	}
	return false
}

// MasterItem is a role, unit or project category.
type MasterItem struct {
	ID        int64
	Kind      MasterKind
	Name      string
	Status    ActiveStatus
	Icon      string
	CreatedAt time.Time
	CreatedBy string
}
