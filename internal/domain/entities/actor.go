package entities

// Role is the authorization role carried in access tokens.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

// Actor is the authenticated caller as resolved by the auth middleware.
//
// CustomerID is set only for RoleCustomer and AgentID only for RoleAgent.
type Actor struct {
	UserID     uint
	Role       Role
	CustomerID uint
	AgentID    uint
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleAgent
}

// OwnsCustomer reports whether the actor is the given customer.
func (a Actor) OwnsCustomer(customerID uint) bool {
	return a.Role == RoleCustomer && a.CustomerID != 0 && a.CustomerID == customerID
}
