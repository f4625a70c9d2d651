// Package status maps the backing store's integer result codes onto a closed
// set of named outcomes and human-readable messages.
package status

// Backing-store status codes. The numeric values are part of the stored
// function contract and must not be renumbered.
const (
	Success          = 0
	UserNotFound     = 1
	WrongPassword    = 2
	WrongAnswer      = 3
	InvalidPassword  = 4
	InvalidQuestion  = 5
	InvalidAnswer    = 6
	InvalidEmail     = 7
	AccountLockedOut = 99

	// Extension codes reported by the create and role stored functions.
	DuplicateUserName = 10
	DuplicateEmail    = 11
	RoleNotFound      = 12
	DuplicateRole     = 13
	UserAlreadyInRole = 14
	UserNotInRole     = 15
)

// Outcome names the translated result of a backing-store call.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeUserNotFound
	OutcomeWrongPassword
	OutcomeWrongAnswer
	OutcomeInvalidPassword
	OutcomeInvalidQuestion
	OutcomeInvalidAnswer
	OutcomeInvalidEmail
	OutcomeAccountLockedOut
	OutcomeDuplicateUserName
	OutcomeDuplicateEmail
	OutcomeRoleNotFound
	OutcomeDuplicateRole
	OutcomeUserAlreadyInRole
	OutcomeUserNotInRole
	OutcomeProviderError
)

var messages = map[int]struct {
	outcome Outcome
	message string
}{
	Success:           {OutcomeSuccess, "the operation completed successfully"},
	UserNotFound:      {OutcomeUserNotFound, "the user was not found"},
	WrongPassword:     {OutcomeWrongPassword, "the password supplied is wrong"},
	WrongAnswer:       {OutcomeWrongAnswer, "the password answer supplied is wrong"},
	InvalidPassword:   {OutcomeInvalidPassword, "the password supplied is invalid"},
	InvalidQuestion:   {OutcomeInvalidQuestion, "the password question supplied is invalid"},
	InvalidAnswer:     {OutcomeInvalidAnswer, "the password answer supplied is invalid"},
	InvalidEmail:      {OutcomeInvalidEmail, "the e-mail address supplied is invalid"},
	AccountLockedOut:  {OutcomeAccountLockedOut, "the user account is locked out"},
	DuplicateUserName: {OutcomeDuplicateUserName, "the username supplied already exists"},
	DuplicateEmail:    {OutcomeDuplicateEmail, "the e-mail address supplied is already in use"},
	RoleNotFound:      {OutcomeRoleNotFound, "the role was not found"},
	DuplicateRole:     {OutcomeDuplicateRole, "the role supplied already exists"},
	UserAlreadyInRole: {OutcomeUserAlreadyInRole, "the user is already in the role"},
	UserNotInRole:     {OutcomeUserNotInRole, "the user is not in the role"},
}

// Translate maps a status code to its outcome and message. Unknown and
// negative codes map to a generic provider error.
func Translate(code int) (Outcome, string) {
	if m, ok := messages[code]; ok {
		return m.outcome, m.message
	}
	return OutcomeProviderError, "the provider encountered an unknown error"
}

// IsCredentialFailure reports whether a status code represents a
// credential-specific failure, deciding whether callers raise a credential
// error rather than a generic provider error.
func IsCredentialFailure(code int) bool {
	switch code {
	case WrongPassword, WrongAnswer, InvalidPassword, InvalidQuestion, InvalidAnswer, AccountLockedOut:
		return true
	default:
		return false
	}
}
