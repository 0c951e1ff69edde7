package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListAccounts returns one page of user accounts, newest first.
func (u *Usecase) ListAccounts(ctx context.Context, q listing.Query) (listing.Page[entities.Account], error) {
	ctx, end := u.begin(ctx, "ListAccounts")
	defer end()

	return u.repo.ListAccounts(ctx, normalize(q, listing.AccountPageSize))
}

// CreateAccount validates and adds a user account.
func (u *Usecase) CreateAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	ctx, end := u.begin(ctx, "CreateAccount")
	defer end()

	res, err := u.createAccount(ctx, a)
	u.finish(ctx, moduleAccounts, "Create Account", err, "Account added successfully")
	return res, err
}

func (u *Usecase) createAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	a = trimAccount(a)
	if err := validateAccount(a); err != nil {
		return nil, err
	}
	res, err := u.repo.CreateAccount(ctx, a)
	return res, accountConflict(err, a)
}

// UpdateAccount rewrites a user account.
func (u *Usecase) UpdateAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	ctx, end := u.begin(ctx, "UpdateAccount")
	defer end()

	res, err := u.updateAccount(ctx, a)
	u.finish(ctx, moduleAccounts, "Update Account", err, "Account updated successfully")
	return res, err
}

func (u *Usecase) updateAccount(ctx context.Context, a entities.Account) (*entities.Account, error) {
	existing, err := u.repo.GetAccount(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(a.Status)) == "" {
		a.Status = existing.Status
	}
	a = trimAccount(a)
	if err := validateAccount(a); err != nil {
		return nil, err
	}
	res, err := u.repo.UpdateAccount(ctx, a)
	return res, accountConflict(err, a)
}

func trimAccount(a entities.Account) entities.Account {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Role = strings.TrimSpace(a.Role)
	if a.Status == "" {
		a.Status = entities.StatusActive
	}
	return a
}

func validateAccount(a entities.Account) error {
	v := entities.NewValidationError()
	required(v, "name", a.Name, "Name is required")
	validEmail(v, "email", a.Email)
	required(v, "role", a.Role, "Role is required")
	if !a.Status.Valid() {
		v.Add("status", "Status must be Active or Inactive")
	}
	return v.OrNil()
}

func accountConflict(err error, a entities.Account) error {
	if errors.Is(err, entities.ErrConflict) {
		return fmt.Errorf("%w: email %s is already registered", entities.ErrConflict, a.Email)
	}
	return err
}
