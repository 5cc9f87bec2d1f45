package entities

// Permission names a guarded action.
type Permission string

const (
	PermProjectView      Permission = "project:view"
	PermProjectWrite     Permission = "project:write"
	PermProjectStage     Permission = "project:stage"
	PermProjectDelete    Permission = "project:delete"
	PermTaskView         Permission = "task:view"
	PermTaskWrite        Permission = "task:write"
	PermTaskDelete       Permission = "task:delete"
	PermTeamView         Permission = "team:view"
	PermTeamWrite        Permission = "team:write"
	PermDocumentWrite    Permission = "document:write"
	PermAnalyticsView    Permission = "analytics:view"
	PermNotificationView Permission = "notification:view"
)

var basePermissions = []Permission{PermProjectView, PermTaskView, PermNotificationView, PermTeamView}

var rolePermissions = map[Role][]Permission{
	RoleManager: {
		PermProjectWrite,
		PermProjectStage,
		PermTaskWrite,
		PermTaskDelete,
		PermDocumentWrite,
		PermAnalyticsView,
	},
	RoleMember: {
		PermDocumentWrite,
	},
}

// Can reports whether the role grants p. Admins hold every permission.
func (r Role) Can(p Permission) bool {
	if r == RoleAdmin {
		return true
	}
	if !r.Valid() {
		return false
	}
	for _, bp := range basePermissions {
		if bp == p {
			return true
		}
	}
	for _, rp := range rolePermissions[r] {
		if rp == p {
			return true
		}
	}
	return false
}

// Can reports whether the principal's role grants p.
func (p Principal) Can(perm Permission) bool {
	return p.UserID != "" && p.Role.Can(perm)
}
