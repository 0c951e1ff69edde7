// Package numbering generates human readable project and document numbers.
package numbering

import (
	"fmt"
	"time"

	"workio/internal/entities"
)

// ProjectPrefix returns "PRJ-<CAT>-YYYYMM-" for the category and month of now.
func ProjectPrefix(category entities.Category, now time.Time) string {
	return fmt.Sprintf("PRJ-%s-%04d%02d-", category.Prefix(), now.Year(), int(now.Month()))
}

// ProjectNo returns e.g. "PRJ-WEB-202509-001".
func ProjectNo(category entities.Category, now time.Time, seq int) string {
	return ProjectPrefix(category, now) + sequence(seq)
}

// DocumentPrefix returns "DOC-YYYYMM-" for the month of now.
func DocumentPrefix(now time.Time) string {
	return fmt.Sprintf("DOC-%04d%02d-", now.Year(), int(now.Month()))
}

// DocumentNo returns e.g. "DOC-202509-001".
func DocumentNo(now time.Time, seq int) string {
	return DocumentPrefix(now) + sequence(seq)
}

func sequence(seq int) string {
	if seq < 1 {
		seq = 1
	}
	return fmt.Sprintf("%03d", seq)
}
