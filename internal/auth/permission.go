package auth

import (
	"cricauction-backend/internal/database/models"
)

// Action names an operation guarded by the role policy
type Action string

const (
	ActionAuctionCreate Action = "auction:create"
	ActionAuctionRead   Action = "auction:read"
	ActionAuctionUpdate Action = "auction:update"
	ActionAuctionDelete Action = "auction:delete"
	ActionTeamManage    Action = "team:manage"
	ActionPlayerManage  Action = "player:manage"
	ActionUserUpdate    Action = "user:update"
	ActionStatsRead     Action = "stats:read"
)

// AllActions lists every action known to the policy
func AllActions() []Action {
	return []Action{
		ActionAuctionCreate,
		ActionAuctionRead,
		ActionAuctionUpdate,
		ActionAuctionDelete,
		ActionTeamManage,
		ActionPlayerManage,
		ActionUserUpdate,
		ActionStatsRead,
	}
}

// DefaultPermissions returns the role table the application ships with.
// Ownership checks still apply on top of it.
func DefaultPermissions() map[models.Role][]Action {
	return map[models.Role][]Action{
		models.RoleUser:  AllActions(),
		models.RoleAdmin: AllActions(),
	}
}

// Policy is an immutable role to actions mapping
type Policy struct {
	allowed map[models.Role]map[Action]struct{}
}

// NewPolicy copies permissions into a new Policy
func NewPolicy(permissions map[models.Role][]Action) *Policy {
	allowed := make(map[models.Role]map[Action]struct{}, len(permissions))
	for role, actions := range permissions {
		set := make(map[Action]struct{}, len(actions))
		for _, action := range actions {
			set[action] = struct{}{}
		}
		allowed[role] = set
	}
	return &Policy{allowed: allowed}
}

// Allowed reports whether role may perform action
func (p *Policy) Allowed(role models.Role, action Action) bool {
	if p == nil {
		return false
	}
	_, ok := p.allowed[role][action]
	return ok
}

// Actions returns the actions granted to role
func (p *Policy) Actions(role models.Role) []Action {
	var out []Action
	for _, action := range AllActions() {
		if p.Allowed(role, action) {
			out = append(out, action)
		}
	}
	return out
}
