// Package memory implements the repository on in-process collections. It is
// the default backend and serves the bundled mock dataset.
package memory

import (
	"context"
	"slices"
	"sync"

	"workio/internal/entities"
	"workio/internal/fixtures"

	"go.uber.org/zap"
)

// Memory keeps every collection in slices ordered by id.
type Memory struct {
	log *zap.SugaredLogger

	mu        sync.RWMutex
	projects  []entities.Project
	tasks     []entities.Task
	documents []entities.Document
	versions  []entities.DocumentVersion
	comments  []entities.Comment
	members   []entities.TeamMember
	accounts  []entities.Account
	master    []entities.MasterItem
	audit     []entities.AuditEntry
	seq       map[string]int64
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log: log.Named("repo.memory"),
		seq: map[string]int64{},
	}
}

// OnStart is a no-op; the store is ready once constructed.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop drops all data.
func (m *Memory) OnStop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}

// Seed replaces every collection with ds.
func (m *Memory) Seed(_ context.Context, ds fixtures.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()

	for _, p := range ds.Projects {
		m.projects = append(m.projects, cloneProject(p))
		m.bump("project", p.ID)
	}
	for _, t := range ds.Tasks {
		m.tasks = append(m.tasks, cloneTask(t))
		m.bump("task", t.ID)
	}
	for _, d := range ds.Documents {
		m.documents = append(m.documents, cloneDocument(d))
		m.bump("document", d.ID)
	}
	for _, v := range ds.Versions {
		m.versions = append(m.versions, v)
		m.bump("version", v.ID)
	}
	for _, c := range ds.Comments {
		m.comments = append(m.comments, c)
		m.bump("comment", c.ID)
	}
	for _, mb := range ds.Members {
		m.members = append(m.members, cloneMember(mb))
		m.bump("member", mb.ID)
		for _, h := range mb.History {
			m.bump("history", h.ID)
		}
	}
	for _, a := range ds.Accounts {
		m.accounts = append(m.accounts, a)
		m.bump("account", a.ID)
	}
	for _, it := range ds.Master {
		m.master = append(m.master, it)
		m.bump("master", it.ID)
	}
	for _, e := range ds.Audit {
		m.audit = append(m.audit, e)
		m.bump("audit", e.ID)
	}

	m.log.Infow("memory store seeded",
		"projects", len(m.projects),
		"tasks", len(m.tasks),
		"documents", len(m.documents),
		"members", len(m.members),
	)
	return nil
}

func (m *Memory) reset() {
	m.projects = nil
	m.tasks = nil
	m.documents = nil
	m.versions = nil
	m.comments = nil
	m.members = nil
	m.accounts = nil
	m.master = nil
	m.audit = nil
	m.seq = map[string]int64{}
}

// next returns the next id of a collection. Callers hold the write lock.
func (m *Memory) next(name string) int64 {
	m.seq[name]++
	return m.seq[name]
}

func (m *Memory) bump(name string, id int64) {
	if id > m.seq[name] {
		m.seq[name] = id
	}
}

func cloneProject(p entities.Project) entities.Project { return p }

func cloneTask(t entities.Task) entities.Task {
	t.Assignees = slices.Clone(t.Assignees)
	if t.ProjectID != nil {
		id := *t.ProjectID
		t.ProjectID = &id
	}
	return t
}

func cloneDocument(d entities.Document) entities.Document {
	d.Reviewers = slices.Clone(d.Reviewers)
	if d.SubmittedDate != nil {
		ts := *d.SubmittedDate
		d.SubmittedDate = &ts
	}
	return d
}

func cloneMember(mb entities.TeamMember) entities.TeamMember {
	mb.Tasks = slices.Clone(mb.Tasks)
	mb.History = slices.Clone(mb.History)
	if mb.Tasks == nil {
		mb.Tasks = []entities.MemberTask{}
	}
	if mb.History == nil {
		mb.History = []entities.HistoryItem{}
	}
	return mb
}
