// Package entities contains core business entities.
package entities

import "time"

// DocumentStatus enumerates the review lifecycle of a document.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "Draft"
	DocumentSubmitted DocumentStatus = "Submitted"
	DocumentApproved  DocumentStatus = "Approved"
	DocumentRejected  DocumentStatus = "Rejected"
)

// Valid reports whether s is a known value.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentDraft, DocumentSubmitted, DocumentApproved, DocumentRejected:
		return true
	}
	return false
}

// CanTransition reports whether a document may move from s to next.
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	switch next {
	case DocumentSubmitted:
		return s == DocumentDraft || s == DocumentRejected
	case DocumentApproved, DocumentRejected:
		return s == DocumentSubmitted
	}
	return false
}

// MaxReviewers caps reviewers per document.
const MaxReviewers = 2

// Document is a project artifact going through review.
type Document struct {
	ID            int64
	DocNo         string
	Title         string
	ProjectNo     string
	Status        DocumentStatus
	CreatedBy     string
	SubmittedDate *time.Time
	LastUpdated   time.Time
	Reviewers     []string
	ReviewedBy    string
	Notes         string
	FileName      string
}

// DocumentVersion is an uploaded revision of a document file.
type DocumentVersion struct {
	ID        int64
	DocNo     string
	Version   string
	UpdatedBy string
	UpdatedAt time.Time
	FileURL   string
}

// Comment is a review remark attached to a document.
type Comment struct {
	ID        int64
	DocNo     string
	Author    string
	JobTitle  string
	Message   string
	CreatedAt time.Time
}

// DocumentDetail bundles a document with its history and comments, newest first.
type DocumentDetail struct {
	Document Document
	Versions []DocumentVersion
	Comments []Comment
}
