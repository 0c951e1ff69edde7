package entities

import "strings"

// ReportType selects the dataset of a downloadable report.
type ReportType string

const (
	ReportMasterData   ReportType = "Master Data"
	ReportDocuments    ReportType = "Documents"
	ReportTransactions ReportType = "Transactions"
	ReportUsers        ReportType = "Users"
)

// ReportTypes lists the reports in the order the download page offers them.
var ReportTypes = []ReportType{ReportMasterData, ReportDocuments, ReportTransactions, ReportUsers}

// Slug is the URL and file name form, e.g. "master-data".
func (r ReportType) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(r)), " ", "-")
}

// ParseReportType accepts a display name or a slug, ignoring case.
func ParseReportType(s string) (ReportType, bool) {
	s = strings.TrimSpace(s)
	for _, r := range ReportTypes {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, r.Slug()) {
			return r, true
		}
	}
	return "", false
}
