package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
)

type CreateUserInput struct {
	UserName         string `json:"username"`
	Password         string `json:"password"`
	Email            string `json:"email"`
	PasswordQuestion string `json:"password_question"`
	PasswordAnswer   string `json:"password_answer"`
	IsApproved       bool   `json:"is_approved"`
}

type ValidateUserInput struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangeQuestionAnswerInput struct {
	Password         string `json:"password"`
	PasswordQuestion string `json:"password_question"`
	PasswordAnswer   string `json:"password_answer"`
}

type ResetPasswordInput struct {
	PasswordAnswer string `json:"password_answer"`
}

type GetPasswordInput struct {
	PasswordAnswer string `json:"password_answer"`
}

type UpdateUserInput struct {
	Email      string `json:"email"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved"`
}

type UserOutput struct {
	ID                    string    `json:"id"`
	UserName              string    `json:"username"`
	Email                 string    `json:"email"`
	PasswordQuestion      string    `json:"password_question"`
	Comment               string    `json:"comment"`
	IsApproved            bool      `json:"is_approved"`
	IsLockedOut           bool      `json:"is_locked_out"`
	CreatedAt             time.Time `json:"created_at"`
	LastLoginAt           time.Time `json:"last_login_at"`
	LastActivityAt        time.Time `json:"last_activity_at"`
	LastPasswordChangedAt time.Time `json:"last_password_changed_at"`
	LastLockoutAt         time.Time `json:"last_lockout_at"`
}

// UserOutputFromDomain converts a domain record to its API shape.
func UserOutputFromDomain(u *domain.MembershipUser) UserOutput {
	return UserOutput{
		ID:                    u.ID,
		UserName:              u.UserName,
		Email:                 u.Email,
		PasswordQuestion:      u.PasswordQuestion,
		Comment:               u.Comment,
		IsApproved:            u.IsApproved,
		IsLockedOut:           u.IsLockedOut,
		CreatedAt:             u.CreatedAt,
		LastLoginAt:           u.LastLoginAt,
		LastActivityAt:        u.LastActivityAt,
		LastPasswordChangedAt: u.LastPasswordChangedAt,
		LastLockoutAt:         u.LastLockoutAt,
	}
}

type PagedUsersOutput struct {
	Users      []UserOutput `json:"users"`
	TotalCount int          `json:"total_count"`
}
