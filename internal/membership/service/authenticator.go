package service

import (
	"context"
	"crypto/subtle"
	"time"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/status"
)

// CheckPassword verifies a presented password against the stored credential
// record. Credential failures return false without error; only transport and
// schema failures surface as errors.
func (p *MembershipProvider) CheckPassword(ctx context.Context, username, password string, updateLastLogin, failIfNotApproved bool) (bool, error) {
	ok, _, _, err := p.checkPasswordDetailed(ctx, username, password, updateLastLogin, failIfNotApproved)
	return ok, err
}

// checkPasswordDetailed is the extended form returning the salt and format
// of the stored record, needed by callers that must re-encode a new password
// with the same salt and format.
func (p *MembershipProvider) checkPasswordDetailed(ctx context.Context, username, password string, updateLastLogin, failIfNotApproved bool) (bool, string, domain.PasswordFormat, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return false, "", 0, err
	}

	// Single atomic fetch, optionally touching last-activity.
	state, code, err := p.users.GetUserAuth(ctx, domain.GetUserAuthRequest{
		UserName:           username,
		UpdateLastActivity: updateLastLogin,
	})
	if err != nil {
		return false, "", 0, err
	}
	if code == status.UserNotFound {
		// No distinguishing signal: callers must not leak username
		// existence at the API boundary.
		return false, "", 0, nil
	}
	if code != status.Success {
		return false, "", 0, statusError("CheckPassword", code, username)
	}

	if state.IsLockedOut {
		return false, state.Salt, state.Format, nil
	}
	if failIfNotApproved && !state.IsApproved {
		return false, state.Salt, state.Format, nil
	}

	encoded, err := p.codec.EncodePassword(password, state.Format, state.Salt)
	if err != nil {
		return false, "", 0, err
	}
	isCorrect := subtle.ConstantTimeCompare([]byte(encoded), []byte(state.Password)) == 1

	// Fast path: a healthy account with a correct password needs no write.
	if isCorrect && state.FailedPasswordAttempts == 0 && state.FailedAnswerAttempts == 0 {
		return true, state.Salt, state.Format, nil
	}

	// One atomic update: increment or reset counters, evaluate the lockout
	// threshold in-store, and touch timestamps on success. Not retried;
	// counter increments make a blind retry unsafe.
	code, err = p.users.UpdateAuthState(ctx, domain.UpdateAuthStateRequest{
		UserName:           username,
		PasswordCorrect:    isCorrect,
		IsPasswordAttempt:  true,
		MaxInvalidAttempts: p.cfg.MaxInvalidPasswordAttempts,
		AttemptWindowMin:   p.cfg.PasswordAttemptWindow,
		UpdateLastLogin:    updateLastLogin,
	})
	if err != nil {
		return false, "", 0, err
	}
	if code != status.Success {
		return false, "", 0, statusError("CheckPassword", code, username)
	}

	// The lockout side effect is not reported here; callers inspect the
	// account state separately.
	return isCorrect, state.Salt, state.Format, nil
}

// ValidateUser authenticates a user for sign-in. It updates login
// timestamps, requires approval, and never raises credential errors.
func (p *MembershipProvider) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	return p.CheckPassword(ctx, username, password, true, true)
}

// UnlockUser clears the lockout flag and failure counters.
func (p *MembershipProvider) UnlockUser(ctx context.Context, username string) error {
	if err := p.gate.Ensure(ctx); err != nil {
		return err
	}
	if err := validateName("username", username); err != nil {
		return err
	}

	code, err := p.users.UnlockUser(ctx, username, time.Now().UTC())
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("UnlockUser", code, username)
	}
	return nil
}

// verifyAnswer compares a presented password answer against the stored
// encoded answer, counting a mismatch against the answer-failure counter.
func (p *MembershipProvider) verifyAnswer(ctx context.Context, username, answer string, state *domain.UserAuthState) error {
	encoded, err := p.codec.EncodePassword(answer, state.Format, state.Salt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(encoded), []byte(state.PasswordAnswer)) == 1 {
		return nil
	}

	code, err := p.users.UpdateAuthState(ctx, domain.UpdateAuthStateRequest{
		UserName:           username,
		PasswordCorrect:    false,
		IsPasswordAttempt:  false,
		MaxInvalidAttempts: p.cfg.MaxInvalidPasswordAttempts,
		AttemptWindowMin:   p.cfg.PasswordAttemptWindow,
	})
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("VerifyAnswer", code, username)
	}
	return &autherror.CredentialError{Status: status.WrongAnswer, Err: autherror.ErrWrongPasswordAnswer}
}
