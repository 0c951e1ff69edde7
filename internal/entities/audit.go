// Package entities contains core business entities.
package entities

import "time"

// AuditStatus is the outcome of an audited action.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "Success"
	AuditFailed  AuditStatus = "Failed"
)

// AuditEntry records who did what in which module.
type AuditEntry struct {
	ID        int64
	User      string
	Action    string
	Module    string
	Timestamp time.Time
	Status    AuditStatus
}
