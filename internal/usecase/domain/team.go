package domain

import (
	"context"
	"fmt"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListMembers returns one page of team members.
func (u *Usecase) ListMembers(ctx context.Context, q listing.Query) (listing.Page[entities.TeamMember], error) {
	ctx, end := u.begin(ctx, "ListMembers")
	defer end()

	return u.repo.ListMembers(ctx, normalize(q, listing.MemberPageSize))
}

// Member returns a member with tasks and history.
func (u *Usecase) Member(ctx context.Context, id int64) (*entities.TeamMember, error) {
	ctx, end := u.begin(ctx, "Member")
	defer end()

	if id <= 0 {
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, id)
}

// CreateMember validates and registers a team member.
func (u *Usecase) CreateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	ctx, end := u.begin(ctx, "CreateMember")
	defer end()

	res, err := u.createMember(ctx, m)
	u.finish(ctx, moduleTeams, "Create Member", err, "Team member added successfully")
	return res, err
}

func (u *Usecase) createMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	m = trimMember(m)
	if err := u.validateMember(ctx, m); err != nil {
		return nil, err
	}
	m.RegisteredAt = u.now()
	m.Tasks = []entities.MemberTask{}
	m.History = []entities.HistoryItem{}
	return u.repo.CreateMember(ctx, m)
}

// UpdateMember rewrites a member and logs unit and status changes in its history.
func (u *Usecase) UpdateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	ctx, end := u.begin(ctx, "UpdateMember")
	defer end()

	res, err := u.updateMember(ctx, m)
	u.finish(ctx, moduleTeams, "Update Member", err, "Team member updated successfully")
	return res, err
}

func (u *Usecase) updateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	existing, err := u.repo.GetMember(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(m.Status)) == "" {
		m.Status = existing.Status
	}
	m = trimMember(m)
	if err := u.validateMember(ctx, m); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = m.Name
	updated.Email = m.Email
	updated.Phone = m.Phone
	updated.Role = m.Role

	now := u.now()
	if m.Unit != existing.Unit {
		updated.History = append(updated.History, entities.HistoryItem{
			Type: entities.HistoryUnitChange, From: existing.Unit, To: m.Unit, Date: now,
		})
	}
	if m.Status != existing.Status {
		updated.History = append(updated.History, entities.HistoryItem{
			Type: entities.HistoryStatusUpdate, From: string(existing.Status), To: string(m.Status), Date: now,
		})
	}
	updated.Unit = m.Unit
	updated.Status = m.Status
	return u.repo.UpdateMember(ctx, updated)
}

// ActiveMembers lists active members for assignee and reviewer inputs.
func (u *Usecase) ActiveMembers(ctx context.Context) ([]entities.Option, error) {
	ctx, end := u.begin(ctx, "ActiveMembers")
	defer end()

	return u.repo.MemberOptions(ctx, entities.StatusActive)
}

func trimMember(m entities.TeamMember) entities.TeamMember {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Role = strings.TrimSpace(m.Role)
	m.Unit = strings.TrimSpace(m.Unit)
	if m.Status == "" {
		m.Status = entities.StatusActive
	}
	return m
}

func (u *Usecase) validateMember(ctx context.Context, m entities.TeamMember) error {
	v := entities.NewValidationError()
	required(v, "name", m.Name, "Name is required")
	required(v, "phone", m.Phone, "Phone number is required")
	validEmail(v, "email", m.Email)
	required(v, "role", m.Role, "Role is required")
	if !m.Status.Valid() {
		v.Add("status", "Status must be Active or Inactive")
	}

	if m.Unit == "" {
		v.Add("unit", "Unit is required")
	} else {
		units, err := u.repo.MasterOptions(ctx, entities.KindUnit, entities.StatusActive)
		if err != nil {
			return err
		}
		if !containsOption(units, m.Unit) {
			v.Add("unit", "Unit does not exist")
		}
	}
	return v.OrNil()
}

func containsOption(opts []entities.Option, name string) bool {
	for _, o := range opts {
		if strings.EqualFold(o.Name, name) {
			return true
		}
	}
	return false
}
