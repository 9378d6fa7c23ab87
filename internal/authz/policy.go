// Package authz maps (principal, resource, action) to an allow/deny decision.
package authz

import "github.com/alkharfy/cveeez-dash/internal/entities"

// Resource is a protected entity family.
type Resource string

const (
	ResourceUser    Resource = "user"
	ResourceTeam    Resource = "team"
	ResourceProject Resource = "project"
	ResourceTask    Resource = "task"
	ResourceComment Resource = "comment"
)

// Action is an operation on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// rules lists the roles permitted per resource/action. Absent entries fall
// back to allowing every authenticated role.
var rules = map[Resource]map[Action][]entities.Role{
	ResourceUser: {
		ActionCreate: {entities.RoleAdmin, entities.RoleManager},
		ActionDelete: {entities.RoleAdmin},
	},
	ResourceTeam: {
		ActionCreate: {entities.RoleAdmin, entities.RoleManager},
		ActionUpdate: {entities.RoleAdmin, entities.RoleManager},
		ActionDelete: {entities.RoleAdmin},
	},
	ResourceProject: {
		ActionCreate: {entities.RoleAdmin, entities.RoleManager},
		ActionUpdate: {entities.RoleAdmin, entities.RoleManager},
		ActionDelete: {entities.RoleAdmin},
	},
}

// Allowed reports whether a role may perform the action on the resource.
func Allowed(role entities.Role, res Resource, act Action) bool {
	if !entities.ValidRole(role) {
		return false
	}
	actions, ok := rules[res]
	if !ok {
		return true
	}
	allowed, ok := actions[act]
	if !ok {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanUpdateUser reports whether the principal may touch the target profile
// at all: owners may edit themselves, admins may edit anyone.
func CanUpdateUser(p entities.Principal, targetID string) bool {
	return p.ID == targetID || p.Role == entities.RoleAdmin
}

// CanChangeRoleOrStatus reports whether the principal may modify role or
// is_active on a profile. Admin only.
func CanChangeRoleOrStatus(p entities.Principal) bool {
	return p.Role == entities.RoleAdmin
}
