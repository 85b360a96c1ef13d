package policy

import "restaurant-management-api/models"

// Identity is the verified caller passed explicitly into every core
// operation. It is built once per request from the authenticated user and
// never read from ambient state.
type Identity struct {
	ID          uint
	Username    string
	IsSuperuser bool
	Groups      []string
}

// FromUser builds an Identity from a loaded user record.
func FromUser(u *models.User) Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		Groups:      u.GroupNames(),
	}
}

func (id Identity) InGroup(name string) bool {
	for _, g := range id.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// RoleClass is the tagged classification the order visibility rules switch
// over. The precedence of Classify is load-bearing: a Manager who is not in
// the Delivery Crew group must land in ClassStaff, not ClassDeliveryCrew.
type RoleClass int

const (
	ClassSuperuser RoleClass = iota
	ClassCustomer            // zero group memberships
	ClassDeliveryCrew
	ClassStaff // any other group, e.g. Manager
)

// Classify resolves the caller to exactly one role class, first match wins:
// superuser, then no-groups customer, then delivery crew, then staff.
func Classify(id Identity) RoleClass {
	switch {
	case id.IsSuperuser:
		return ClassSuperuser
	case len(id.Groups) == 0:
		return ClassCustomer
	case id.InGroup(models.GroupDeliveryCrew):
		return ClassDeliveryCrew
	default:
		return ClassStaff
	}
}
