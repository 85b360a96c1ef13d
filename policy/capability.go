package policy

import "restaurant-management-api/models"

// Operation names every privileged action in the system. Handlers ask the
// capability table once per request instead of branching on HTTP verbs.
type Operation int

const (
	OpBrowseCatalog Operation = iota
	OpManageCatalog
	OpListManagers
	OpMutateManagers
	OpListDeliveryCrew
	OpMutateDeliveryCrew
)

// Capability is the privilege level an operation requires.
type Capability int

const (
	CapAuthenticated Capability = iota
	CapManagerOrAdmin
	CapAdmin
)

// capabilities is the authoritative operation -> required capability table.
// Listing delivery crew deliberately requires only authentication while
// listing managers requires admin; the asymmetry matches observed behavior.
var capabilities = map[Operation]Capability{
	OpBrowseCatalog:      CapAuthenticated,
	OpManageCatalog:      CapAdmin,
	OpListManagers:       CapAdmin,
	OpMutateManagers:     CapAdmin,
	OpListDeliveryCrew:   CapAuthenticated,
	OpMutateDeliveryCrew: CapManagerOrAdmin,
}

// Allowed reports whether the caller holds the capability op requires.
// Unknown operations are denied.
func Allowed(id Identity, op Operation) bool {
	required, ok := capabilities[op]
	if !ok {
		return false
	}
	switch required {
	case CapAuthenticated:
		return true
	case CapManagerOrAdmin:
		return id.IsSuperuser || id.InGroup(models.GroupManager)
	case CapAdmin:
		return id.IsSuperuser
	default:
		return false
	}
}
