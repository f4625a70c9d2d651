package domain

import "time"

// Request/response pairs for backing-store calls. Requests carry only true
// inputs; responses carry every server-assigned value alongside the status
// code reported by the stored function.

type GetUserAuthRequest struct {
	UserName           string
	UpdateLastActivity bool
}

type UpdateAuthStateRequest struct {
	UserName           string
	PasswordCorrect    bool
	IsPasswordAttempt  bool // false counts against the answer counter
	MaxInvalidAttempts int
	AttemptWindowMin   int
	UpdateLastLogin    bool
}

type CreateUserRequest struct {
	ID                  string
	UserName            string
	Email               string
	EncodedPassword     string
	EncodedAnswer       string
	PasswordQuestion    string
	Salt                string
	Format              PasswordFormat
	IsApproved          bool
	RequiresUniqueEmail bool
	CreatedAt           time.Time
}

type CreateUserResponse struct {
	Status    int
	ID        string
	CreatedAt time.Time
}

type SetPasswordRequest struct {
	UserName        string
	EncodedPassword string
	// ResetCounters applies the successful-login counter semantics that a
	// password reset shares with a correct sign-in.
	ResetCounters bool
}

type ChangeQuestionAnswerRequest struct {
	UserName         string
	PasswordQuestion string
	EncodedAnswer    string
}

type GetPasswordRequest struct {
	UserName           string
	EncodedAnswer      string
	RequiresAnswer     bool
	MaxInvalidAttempts int
	AttemptWindowMin   int
}

type GetPasswordResponse struct {
	Status          int
	EncodedPassword string
}

type UpdateUserRequest struct {
	UserName            string
	Email               string
	Comment             string
	IsApproved          bool
	RequiresUniqueEmail bool
}

type RoleBatchResult struct {
	Status int
	// Name is the offending username or rolename reported by the backing
	// store's result row, if any.
	Name string
}
