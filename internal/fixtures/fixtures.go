// Package fixtures provides the mock dataset the dashboard runs on when no
// database is configured.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"workio/internal/entities"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

const (
	dateLayout   = "2006-01-02"
	documentSize = 72
	auditSize    = 58
)

// Dataset is a complete snapshot of every collection.
type Dataset struct {
	Projects  []entities.Project
	Tasks     []entities.Task
	Documents []entities.Document
	Versions  []entities.DocumentVersion
	Comments  []entities.Comment
	Members   []entities.TeamMember
	Accounts  []entities.Account
	Master    []entities.MasterItem
	Audit     []entities.AuditEntry
}

type seedFile struct {
	Projects []struct {
		ID          int64  `yaml:"id"`
		ProjectNo   string `yaml:"project_no"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Owner       string `yaml:"owner"`
		Client      string `yaml:"client"`
		Category    string `yaml:"category"`
		Priority    string `yaml:"priority"`
		Status      string `yaml:"status"`
		StartDate   string `yaml:"start_date"`
		EndDate     string `yaml:"end_date"`
		Budget      int64  `yaml:"budget"`
		Progress    int    `yaml:"progress"`
	} `yaml:"projects"`
	Tasks []struct {
		ID        int64    `yaml:"id"`
		Title     string   `yaml:"title"`
		CreatedAt string   `yaml:"created_at"`
		DueDate   string   `yaml:"due_date"`
		Priority  string   `yaml:"priority"`
		Status    string   `yaml:"status"`
		Assignees []string `yaml:"assignees"`
		Project   *int64   `yaml:"project"`
		Notes     string   `yaml:"notes"`
	} `yaml:"tasks"`
	Members []struct {
		ID           int64  `yaml:"id"`
		Name         string `yaml:"name"`
		Email        string `yaml:"email"`
		Phone        string `yaml:"phone"`
		Role         string `yaml:"role"`
		Unit         string `yaml:"unit"`
		RegisteredAt string `yaml:"registered_at"`
		Status       string `yaml:"status"`
		Tasks        []struct {
			ID     int64  `yaml:"id"`
			Title  string `yaml:"title"`
			Status string `yaml:"status"`
		} `yaml:"tasks"`
		History []struct {
			ID   int64  `yaml:"id"`
			Type string `yaml:"type"`
			From string `yaml:"from"`
			To   string `yaml:"to"`
			Date string `yaml:"date"`
		} `yaml:"history"`
	} `yaml:"members"`
	Accounts []struct {
		ID     int64  `yaml:"id"`
		Name   string `yaml:"name"`
		Email  string `yaml:"email"`
		Role   string `yaml:"role"`
		Status string `yaml:"status"`
	} `yaml:"accounts"`
	Roles      []string `yaml:"roles"`
	Units      []string `yaml:"units"`
	Categories []struct {
		Name string `yaml:"name"`
		Icon string `yaml:"icon"`
	} `yaml:"categories"`
	Versions []struct {
		ID        int64  `yaml:"id"`
		DocNo     string `yaml:"doc_no"`
		Version   string `yaml:"version"`
		UpdatedBy string `yaml:"updated_by"`
		UpdatedAt string `yaml:"updated_at"`
		FileURL   string `yaml:"file_url"`
	} `yaml:"versions"`
	Comments []struct {
		ID        int64  `yaml:"id"`
		DocNo     string `yaml:"doc_no"`
		Author    string `yaml:"author"`
		JobTitle  string `yaml:"job_title"`
		Message   string `yaml:"message"`
		CreatedAt string `yaml:"created_at"`
	} `yaml:"comments"`
}

// Load decodes the embedded seed file and generates the bulk collections.
func Load() (Dataset, error) {
	var raw seedFile
	if err := yaml.Unmarshal(seedYAML, &raw); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}

	var ds Dataset
	p := dateParser{}

	for _, r := range raw.Projects {
		ds.Projects = append(ds.Projects, entities.Project{
			ID:          r.ID,
			ProjectNo:   r.ProjectNo,
			Name:        r.Name,
			Description: r.Description,
			Owner:       r.Owner,
			Client:      r.Client,
			Category:    entities.Category(r.Category),
			Priority:    entities.Priority(r.Priority),
			Status:      entities.ProjectStatus(r.Status),
			StartDate:   p.date(r.StartDate),
			EndDate:     p.date(r.EndDate),
			Budget:      r.Budget,
			Progress:    r.Progress,
			CreatedAt:   p.date(r.StartDate),
		})
	}

	for _, r := range raw.Tasks {
		ds.Tasks = append(ds.Tasks, entities.Task{
			ID:        r.ID,
			Title:     r.Title,
			CreatedAt: p.date(r.CreatedAt),
			DueDate:   p.date(r.DueDate),
			Priority:  entities.Priority(r.Priority),
			Status:    entities.TaskStatus(r.Status),
			Assignees: r.Assignees,
			ProjectID: r.Project,
			Notes:     r.Notes,
		})
	}

	for _, r := range raw.Members {
		m := entities.TeamMember{
			ID:           r.ID,
			Name:         r.Name,
			Email:        r.Email,
			Phone:        r.Phone,
			Role:         r.Role,
			Unit:         r.Unit,
			RegisteredAt: p.date(r.RegisteredAt),
			Status:       entities.ActiveStatus(r.Status),
			Tasks:        []entities.MemberTask{},
			History:      []entities.HistoryItem{},
		}
		for _, t := range r.Tasks {
			m.Tasks = append(m.Tasks, entities.MemberTask{ID: t.ID, Title: t.Title, Status: entities.MemberTaskStatus(t.Status)})
		}
		for _, h := range r.History {
			m.History = append(m.History, entities.HistoryItem{
				ID: h.ID, Type: entities.HistoryType(h.Type), From: h.From, To: h.To, Date: p.date(h.Date),
			})
		}
		ds.Members = append(ds.Members, m)
	}

	for _, r := range raw.Accounts {
		ds.Accounts = append(ds.Accounts, entities.Account{
			ID: r.ID, Name: r.Name, Email: r.Email, Role: r.Role, Status: entities.ActiveStatus(r.Status),
		})
	}

	ds.Master = masterItems(raw)

	for _, r := range raw.Versions {
		ds.Versions = append(ds.Versions, entities.DocumentVersion{
			ID: r.ID, DocNo: r.DocNo, Version: r.Version, UpdatedBy: r.UpdatedBy, UpdatedAt: p.date(r.UpdatedAt), FileURL: r.FileURL,
		})
	}
	for _, r := range raw.Comments {
		ds.Comments = append(ds.Comments, entities.Comment{
			ID: r.ID, DocNo: r.DocNo, Author: r.Author, JobTitle: r.JobTitle, Message: r.Message, CreatedAt: p.date(r.CreatedAt),
		})
	}

	if p.err != nil {
		return Dataset{}, p.err
	}

	ds.Documents = Documents(documentSize)
	ds.Audit = AuditTrail(auditSize)
	return ds, nil
}

// MustLoad is Load for tests and static initialization.
func MustLoad() Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}

func masterItems(raw seedFile) []entities.MasterItem {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	items := make([]entities.MasterItem, 0, len(raw.Roles)+len(raw.Units)+len(raw.Categories))
	var id int64

	add := func(kind entities.MasterKind, name, icon string, offset int) {
		id++
		items = append(items, entities.MasterItem{
			ID:        id,
			Kind:      kind,
			Name:      name,
			Status:    entities.StatusActive,
			Icon:      icon,
			CreatedAt: created.AddDate(0, 0, offset),
			CreatedBy: entities.SystemActor,
		})
	}
	for i, r := range raw.Roles {
		add(entities.KindRole, r, "", i)
	}
	for i, u := range raw.Units {
		add(entities.KindUnit, u, "", i)
	}
	for i, c := range raw.Categories {
		add(entities.KindCategory, c.Name, c.Icon, i)
	}
	return items
}

type dateParser struct {
	err error
}

func (p *dateParser) date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse seed date %q: %w", s, err)
	}
	return t
}
