package groups

import (
	"context"
	"errors"

	"restaurant-management-api/models"
	"restaurant-management-api/policy"
)

// ErrUserNotFound is reported when the target username does not resolve to a
// known user. Distinct from the no-op success of adding an existing member or
// removing an absent one.
var ErrUserNotFound = errors.New("user not found")

var errUnknownGroup = errors.New("unknown group")

// Directory is the persistence boundary for users and group membership.
// AddMember and RemoveMember must be idempotent.
type Directory interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	Members(ctx context.Context, group string) ([]models.User, error)
	AddMember(ctx context.Context, group string, userID uint) error
	RemoveMember(ctx context.Context, group string, userID uint) error
}

// Manager mutates membership of the Manager and Delivery Crew groups, gated
// by the capability table.
type Manager struct {
	dir Directory
}

func NewManager(dir Directory) *Manager {
	return &Manager{dir: dir}
}

func listOp(group string) (policy.Operation, error) {
	switch group {
	case models.GroupManager:
		return policy.OpListManagers, nil
	case models.GroupDeliveryCrew:
		return policy.OpListDeliveryCrew, nil
	default:
		return 0, errUnknownGroup
	}
}

func mutateOp(group string) (policy.Operation, error) {
	switch group {
	case models.GroupManager:
		return policy.OpMutateManagers, nil
	case models.GroupDeliveryCrew:
		return policy.OpMutateDeliveryCrew, nil
	default:
		return 0, errUnknownGroup
	}
}

// List returns the members of the given group.
func (m *Manager) List(ctx context.Context, id policy.Identity, group string) ([]models.User, error) {
	op, err := listOp(group)
	if err != nil {
		return nil, err
	}
	if !policy.Allowed(id, op) {
		return nil, policy.ErrForbidden
	}
	return m.dir.Members(ctx, group)
}

// Add puts the named user into the group. Adding a user who is already a
// member is a success with no state change.
func (m *Manager) Add(ctx context.Context, id policy.Identity, group, username string) error {
	op, err := mutateOp(group)
	if err != nil {
		return err
	}
	if !policy.Allowed(id, op) {
		return policy.ErrForbidden
	}
	user, err := m.dir.UserByUsername(ctx, username)
	if err != nil {
		return err
	}
	return m.dir.AddMember(ctx, group, user.ID)
}

// Remove takes the named user out of the group. Removing a non-member is a
// success with no state change.
func (m *Manager) Remove(ctx context.Context, id policy.Identity, group, username string) error {
	op, err := mutateOp(group)
	if err != nil {
		return err
	}
	if !policy.Allowed(id, op) {
		return policy.ErrForbidden
	}
	user, err := m.dir.UserByUsername(ctx, username)
	if err != nil {
		return err
	}
	return m.dir.RemoveMember(ctx, group, user.ID)
}
