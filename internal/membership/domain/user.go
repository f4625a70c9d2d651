package domain

import (
	"fmt"
	"time"
)

// PasswordFormat selects how passwords are stored. It is a provider-level
// configuration constant, never per-user.
type PasswordFormat int

const (
	PasswordFormatClear PasswordFormat = iota
	PasswordFormatEncrypted
	PasswordFormatHashed
)

// ParsePasswordFormat maps the configuration string to a PasswordFormat.
func ParsePasswordFormat(s string) (PasswordFormat, error) {
	switch s {
	case "Clear":
		return PasswordFormatClear, nil
	case "Encrypted":
		return PasswordFormatEncrypted, nil
	case "Hashed":
		return PasswordFormatHashed, nil
	default:
		return 0, fmt.Errorf("unknown password format %q", s)
	}
}

func (f PasswordFormat) String() string {
	switch f {
	case PasswordFormatClear:
		return "Clear"
	case PasswordFormatEncrypted:
		return "Encrypted"
	case PasswordFormatHashed:
		return "Hashed"
	default:
		return fmt.Sprintf("PasswordFormat(%d)", int(f))
	}
}

// MembershipUser is the caller-visible account record. Authentication
// material lives in UserAuthState and never leaves the service layer.
type MembershipUser struct {
	ID                    string
	UserName              string
	Email                 string
	PasswordQuestion      string
	Comment               string
	IsApproved            bool
	IsLockedOut           bool
	CreatedAt             time.Time
	LastLoginAt           time.Time
	LastActivityAt        time.Time
	LastPasswordChangedAt time.Time
	LastLockoutAt         time.Time
}

// UserAuthState is the credential record fetched for a password check: the
// stored encoded password and answer, the salt/format needed to re-encode an
// attempt, and the lockout bookkeeping counters.
type UserAuthState struct {
	Password               string
	PasswordAnswer         string
	Salt                   string
	Format                 PasswordFormat
	FailedPasswordAttempts int
	FailedAnswerAttempts   int
	IsApproved             bool
	IsLockedOut            bool
	LastLoginAt            time.Time
	LastActivityAt         time.Time
}
