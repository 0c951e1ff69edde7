package domain

import (
	"context"
	"fmt"
	"strings"

	"workio/internal/entities"
)

// Notifications returns the toasts that have not expired.
func (u *Usecase) Notifications(_ context.Context) []entities.Notification {
	if u.notifier == nil {
		return []entities.Notification{}
	}
	return u.notifier.Active()
}

// DismissNotification closes a toast before it expires.
func (u *Usecase) DismissNotification(_ context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: notification id is required", entities.ErrInvalidArgument)
	}
	if u.notifier == nil {
		return entities.ErrNotificationNotFound
	}
	return u.notifier.Dismiss(id)
}
