package admin

// Permission represents an admin permission
type Permission string

const (
	// Report moderation
	PermViewReports     Permission = "reports.view"
	PermModerateReports Permission = "reports.moderate"

	// Fact-check review
	PermViewFactChecks   Permission = "factchecks.view"
	PermReviewFactChecks Permission = "factchecks.review"

	// Reference content
	PermManageNews          Permission = "news.manage"
	PermManageDirectory     Permission = "directory.manage"
	PermManageOpportunities Permission = "opportunities.manage"

	// Users
	PermViewUsers Permission = "users.view"
)

// RolePermissions maps roles to their permissions.
// Super admin is resolved by wildcard in HasPermission and is not listed.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewReports, PermModerateReports,
		PermViewFactChecks, PermReviewFactChecks,
		PermManageNews, PermManageDirectory, PermManageOpportunities,
		PermViewUsers,
	},
	RoleModerator: {
		PermViewReports, PermModerateReports,
		PermViewFactChecks, PermReviewFactChecks,
	},
}

// RoleHierarchy defines role levels (higher = more permissions)
var RoleHierarchy = map[Role]int{
	RoleSuperAdmin: 100,
	RoleAdmin:      80,
	RoleModerator:  60,
}

// CanManage checks if role1 can manage role2
func CanManage(role1, role2 Role) bool {
	return RoleHierarchy[role1] > RoleHierarchy[role2]
}
