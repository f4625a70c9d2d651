package dto

type CreateRoleInput struct {
	RoleName string `json:"rolename"`
}

type RoleAssignmentInput struct {
	UserNames []string `json:"usernames"`
	RoleNames []string `json:"rolenames"`
}
