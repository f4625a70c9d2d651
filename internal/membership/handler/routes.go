package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the membership and role endpoints. Static segments
// are registered before their parameterised siblings so /users/by-email and
// the search endpoints never shadow a username.
func RegisterRoutes(app *fiber.App, m *MembershipHandler, r *RoleHandler) {
	v1 := app.Group("/api/v1")

	v1.Post("/users", m.CreateUser)
	v1.Get("/users", m.GetAllUsers)
	v1.Post("/users/validate", m.ValidateUser)

	// Unsupported by this provider; kept addressable so callers get 501
	// instead of 404.
	v1.Get("/users/search/by-name", m.FindUsersByName)
	v1.Get("/users/search/by-email", m.FindUsersByEmail)
	v1.Get("/users/online-count", m.GetNumberOfUsersOnline)

	v1.Get("/users/by-email/:email", m.GetUserNameByEmail)
	v1.Get("/users/by-id/:id", m.GetUserByID)

	v1.Get("/users/:username", m.GetUser)
	v1.Put("/users/:username", m.UpdateUser)
	v1.Delete("/users/:username", m.DeleteUser)
	v1.Post("/users/:username/password", m.ChangePassword)
	v1.Post("/users/:username/password/reset", m.ResetPassword)
	v1.Get("/users/:username/password", m.GetPassword)
	v1.Post("/users/:username/question-answer", m.ChangeQuestionAnswer)
	v1.Post("/users/:username/unlock", m.UnlockUser)
	v1.Get("/users/:username/roles", r.GetRolesForUser)

	v1.Post("/roles", r.CreateRole)
	v1.Get("/roles", r.GetAllRoles)
	v1.Delete("/roles/:role", r.DeleteRole)
	v1.Get("/roles/:role/exists", r.RoleExists)
	v1.Get("/roles/:role/users/find", r.FindUsersInRole)
	v1.Get("/roles/:role/users/:username", r.IsUserInRole)
	v1.Get("/roles/:role/users", r.GetUsersInRole)

	v1.Post("/role-assignments", r.AddUsersToRoles)
	v1.Delete("/role-assignments", r.RemoveUsersFromRoles)
}
