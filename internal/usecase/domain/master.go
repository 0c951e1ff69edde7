package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// Category icons the dashboard can render.
var categoryIcons = []string{"Monitor", "Smartphone", "Wrench"}

var masterPageSizes = map[entities.MasterKind]int{
	entities.KindRole:     listing.RolePageSize,
	entities.KindUnit:     listing.UnitPageSize,
	entities.KindCategory: listing.CategoryPageSize,
}

var masterLabels = map[entities.MasterKind]string{
	entities.KindRole:     "Role",
	entities.KindUnit:     "Unit",
	entities.KindCategory: "Project Category",
}

// ListMaster returns one page of roles, units or categories, newest first.
func (u *Usecase) ListMaster(ctx context.Context, kind entities.MasterKind, q listing.Query) (listing.Page[entities.MasterItem], error) {
	ctx, end := u.begin(ctx, "ListMaster")
	defer end()

	if err := checkKind(kind); err != nil {
		return listing.Page[entities.MasterItem]{}, err
	}
	return u.repo.ListMaster(ctx, kind, normalize(q, masterPageSizes[kind]))
}

// CreateMaster adds a role, unit or category.
func (u *Usecase) CreateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	ctx, end := u.begin(ctx, "CreateMaster")
	defer end()

	res, err := u.createMaster(ctx, item)
	u.finish(ctx, moduleMaster, "Create "+masterLabels[item.Kind], err, masterLabels[item.Kind]+" added successfully")
	return res, err
}

func (u *Usecase) createMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	if err := checkKind(item.Kind); err != nil {
		return nil, err
	}
	item = defaultMaster(item)
	if err := validateMaster(item); err != nil {
		return nil, err
	}
	item.CreatedAt = u.now()
	item.CreatedBy = entities.ActorFrom(ctx)

	res, err := u.repo.CreateMaster(ctx, item)
	return res, masterConflict(err, item)
}

// UpdateMaster renames or toggles a role, unit or category.
func (u *Usecase) UpdateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	ctx, end := u.begin(ctx, "UpdateMaster")
	defer end()

	res, err := u.updateMaster(ctx, item)
	u.finish(ctx, moduleMaster, "Update "+masterLabels[item.Kind], err, masterLabels[item.Kind]+" updated successfully")
	return res, err
}

func (u *Usecase) updateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error) {
	if err := checkKind(item.Kind); err != nil {
		return nil, err
	}
	existing, err := u.repo.GetMaster(ctx, item.Kind, item.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(item.Status)) == "" {
		item.Status = existing.Status
	}
	if strings.TrimSpace(item.Icon) == "" {
		item.Icon = existing.Icon
	}
	item = defaultMaster(item)
	if err := validateMaster(item); err != nil {
		return nil, err
	}
	res, err := u.repo.UpdateMaster(ctx, item)
	return res, masterConflict(err, item)
}

// MasterOptions lists active items of kind for selection inputs.
func (u *Usecase) MasterOptions(ctx context.Context, kind entities.MasterKind) ([]entities.Option, error) {
	ctx, end := u.begin(ctx, "MasterOptions")
	defer end()

	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return u.repo.MasterOptions(ctx, kind, entities.StatusActive)
}

func checkKind(kind entities.MasterKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown master data kind %q", entities.ErrInvalidArgument, kind)
	}
	return nil
}

func defaultMaster(item entities.MasterItem) entities.MasterItem {
	item.Name = strings.TrimSpace(item.Name)
	item.Icon = strings.TrimSpace(item.Icon)
	if item.Status == "" {
		item.Status = entities.StatusActive
	}
	if item.Kind != entities.KindCategory {
		item.Icon = ""
	} else if item.Icon == "" {
		item.Icon = categoryIcons[0]
	}
	return item
}

func validateMaster(item entities.MasterItem) error {
	v := entities.NewValidationError()
	required(v, "name", item.Name, masterLabels[item.Kind]+" name is required")
	if !item.Status.Valid() {
		v.Add("status", "Status must be Active or Inactive")
	}
	if item.Kind == entities.KindCategory && !containsFold(categoryIcons, item.Icon) {
		v.Add("icon", "Icon must be Monitor, Smartphone or Wrench")
	}
	return v.OrNil()
}

func masterConflict(err error, item entities.MasterItem) error {
	if errors.Is(err, entities.ErrConflict) {
		return fmt.Errorf("%w: %s %q already exists", entities.ErrConflict, strings.ToLower(masterLabels[item.Kind]), item.Name)
	}
	return err
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
