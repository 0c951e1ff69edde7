package fixtures

import (
	"fmt"
	"time"

	"workio/internal/entities"
)

var (
	people        = []string{"Firda Rosiana", "Andi Pratama", "Siti Aisyah", "Budi Santoso", "Dewi Lestari", "Rizky Hidayat", "Nina Puspita"}
	docTitles     = []string{"Project Brief", "Contract Client", "Design Mockup", "Budget Proposal", "Meeting Notes", "Test Plan"}
	docProjects   = []string{"PRJ-WEB-202509-001", "PRJ-MOB-202509-002", "PRJ-INT-202509-003"}
	docStatuses   = []entities.DocumentStatus{entities.DocumentDraft, entities.DocumentSubmitted, entities.DocumentApproved, entities.DocumentRejected}
	auditActions  = []string{"Login", "Logout", "Create Task", "Update Task", "Review Document", "Approve Document", "Delete Document", "Update Project"}
	auditModules  = []string{"Overview", "Master", "Teams", "Tasks", "Projects", "Documents", "AuditTrail", "Settings", "Logout"}
	auditStatuses = []entities.AuditStatus{entities.AuditSuccess, entities.AuditFailed}
)

// Documents generates n documents cycling through people, titles, projects and statuses.
func Documents(n int) []entities.Document {
	out := make([]entities.Document, 0, n)
	for i := 0; i < n; i++ {
		status := docStatuses[i%len(docStatuses)]
		day := time.Date(2025, time.September, 10+i%20, 0, 0, 0, 0, time.UTC)
		reviewer := people[(i+1)%len(people)]

		d := entities.Document{
			ID:          int64(i + 1),
			DocNo:       fmt.Sprintf("DOC-2025-%03d", i+1),
			Title:       docTitles[i%len(docTitles)],
			ProjectNo:   docProjects[i%len(docProjects)],
			Status:      status,
			CreatedBy:   people[i%len(people)],
			LastUpdated: day,
			Reviewers:   []string{reviewer},
		}
		if status != entities.DocumentDraft {
			submitted := day
			d.SubmittedDate = &submitted
		}
		if status == entities.DocumentApproved || status == entities.DocumentRejected {
			d.ReviewedBy = reviewer
		}
		out = append(out, d)
	}
	return out
}

// AuditTrail generates n audit entries spread over September 2025.
func AuditTrail(n int) []entities.AuditEntry {
	out := make([]entities.AuditEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.AuditEntry{
			ID:        int64(i + 1),
			User:      people[i%len(people)],
			Action:    auditActions[i%len(auditActions)],
			Module:    auditModules[i%len(auditModules)],
			Timestamp: time.Date(2025, time.September, 1+i%30, 8+i%10, 15+i%45, 0, 0, time.UTC),
			Status:    auditStatuses[i%len(auditStatuses)],
		})
	}
	return out
}
