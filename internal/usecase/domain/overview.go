package domain

import (
	"context"
	"fmt"
	"sort"
	"time"

	"workio/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Overview aggregates the dashboard counters. Tasks due and completed per
// month are computed for day and its year; a zero day means today.
func (u *Usecase) Overview(ctx context.Context, day time.Time) (entities.Overview, error) {
	ctx, end := u.begin(ctx, "Overview")
	defer end()

	if day.IsZero() {
		day = u.now()
	}

	var (
		projects []entities.Project
		tasks    []entities.Task
		docs     map[entities.DocumentStatus]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = u.repo.AllProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = u.repo.AllTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		docs, err = u.repo.CountDocumentsByStatus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Overview{}, fmt.Errorf("overview: %w", err)
	}

	out := entities.Overview{
		ProjectsByStatus:   map[entities.ProjectStatus]int{},
		ProjectsByCategory: map[entities.Category]int{},
		TasksByStatus:      map[entities.TaskStatus]int{},
		DocumentsByStatus:  docs,
		TasksDue:           []entities.Task{},
	}
	if out.DocumentsByStatus == nil {
		out.DocumentsByStatus = map[entities.DocumentStatus]int{}
	}

	for _, p := range projects {
		out.ProjectsByStatus[p.Status]++
		out.ProjectsByCategory[p.Category]++
	}

	open := map[string]int{}
	for _, t := range tasks {
		out.TasksByStatus[t.Status]++
		if sameDay(t.DueDate, day) {
			out.TasksDue = append(out.TasksDue, t)
		}
		switch t.Status {
		case entities.TaskInProgress:
			for _, a := range t.Assignees {
				open[a]++
			}
		case entities.TaskCompleted:
			if t.DueDate.Year() == day.Year() {
				out.CompletedByMonth[t.DueDate.Month()-1]++
			}
		}
	}

	out.OpenTasksByAssignee = make([]entities.AssigneeLoad, 0, len(open))
	for name, n := range open {
		out.OpenTasksByAssignee = append(out.OpenTasksByAssignee, entities.AssigneeLoad{Assignee: name, Open: n})
	}
	sort.Slice(out.OpenTasksByAssignee, func(i, j int) bool {
		a, b := out.OpenTasksByAssignee[i], out.OpenTasksByAssignee[j]
		if a.Open != b.Open {
			return a.Open > b.Open
		}
		return a.Assignee < b.Assignee
	})
	return out, nil
}
