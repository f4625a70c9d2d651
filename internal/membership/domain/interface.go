package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_role_repository.go -package=mocks github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain RoleRepository,RoleBatchTx

import (
	"context"
	"time"
)

// SchemaProber issues one compatibility probe for a declared feature name.
// The returned int is the backing store's status code; non-zero means the
// schema cannot serve that feature.
type SchemaProber interface {
	ProbeSchemaVersion(ctx context.Context, feature string) (int, error)
}

// UserRepository is the stored-function contract for account data. Every
// method returns the backing store's integer status code next to its rows;
// the error return is reserved for transport failures.
type UserRepository interface {
	SchemaProber

	GetUserAuth(ctx context.Context, req GetUserAuthRequest) (*UserAuthState, int, error)
	UpdateAuthState(ctx context.Context, req UpdateAuthStateRequest) (int, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error)
	SetPassword(ctx context.Context, req SetPasswordRequest) (int, error)
	ChangeQuestionAnswer(ctx context.Context, req ChangeQuestionAnswerRequest) (int, error)
	GetPassword(ctx context.Context, req GetPasswordRequest) (*GetPasswordResponse, error)
	GetUserByName(ctx context.Context, username string, updateActivity bool) (*MembershipUser, int, error)
	GetUserByID(ctx context.Context, id string) (*MembershipUser, int, error)
	GetUserNameByEmail(ctx context.Context, email string) (string, int, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (int, error)
	DeleteUser(ctx context.Context, username string) (int, error)
	UnlockUser(ctx context.Context, username string, at time.Time) (int, error)
	GetAllUsers(ctx context.Context, pageIndex, pageSize int) ([]MembershipUser, int, error)
}

// RoleBatchTx is one transaction scope covering a multi-chunk role-assignment
// operation. Name lists are comma-joined chunks prepared by the service.
type RoleBatchTx interface {
	AddUsersToRoles(ctx context.Context, usernames, rolenames string) (RoleBatchResult, error)
	RemoveUsersFromRoles(ctx context.Context, usernames, rolenames string) (RoleBatchResult, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RoleRepository is the stored-function contract for role data.
type RoleRepository interface {
	SchemaProber

	CreateRole(ctx context.Context, rolename string) (int, error)
	RoleExists(ctx context.Context, rolename string) (bool, int, error)
	IsUserInRole(ctx context.Context, username, rolename string) (bool, int, error)
	GetRolesForUser(ctx context.Context, username string) ([]string, int, error)
	GetUsersInRole(ctx context.Context, rolename string) ([]string, int, error)
	GetAllRoles(ctx context.Context) ([]string, error)
	FindUsersInRole(ctx context.Context, rolename, usernameToMatch string) ([]string, int, error)
	BeginBatch(ctx context.Context) (RoleBatchTx, error)
}
