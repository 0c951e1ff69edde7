// Package entities contains core business entities.
package entities

// Account is a dashboard user account.
type Account struct {
	ID     int64
	Name   string
	Email  string
	Role   string
	Status ActiveStatus
}
