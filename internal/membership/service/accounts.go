package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/status"
	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
)

// CreateUser provisions a new account. All validation runs before the
// backing-store call; the store enforces uniqueness atomically and reports
// duplicates through its status code.
func (p *MembershipProvider) CreateUser(ctx context.Context, in domain.CreateUserRequest, password, answer string) (*domain.MembershipUser, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := validateName("username", in.UserName); err != nil {
		return nil, err
	}
	if err := p.validatePasswordPolicy(in.UserName, password); err != nil {
		return nil, err
	}
	if p.cfg.RequiresUniqueEmail && in.Email == "" {
		return nil, autherror.NewValidation("email", "must not be empty when unique emails are required")
	}
	if p.cfg.RequiresQuestionAndAnswer {
		if in.PasswordQuestion == "" {
			return nil, autherror.NewValidation("password_question", "must not be empty")
		}
		if answer == "" {
			return nil, autherror.NewValidation("password_answer", "must not be empty")
		}
	}

	salt, err := p.codec.GenerateSalt()
	if err != nil {
		return nil, err
	}
	encodedPassword, err := p.codec.EncodePassword(password, p.cfg.PasswordFormat, salt)
	if err != nil {
		return nil, err
	}
	if len(encodedPassword) > constant.MaxEncodedPasswordLength {
		return nil, autherror.NewValidation("password", "encoded form exceeds the storage limit")
	}
	encodedAnswer := ""
	if answer != "" {
		encodedAnswer, err = p.codec.EncodePassword(answer, p.cfg.PasswordFormat, salt)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC().Truncate(time.Second)
	req := domain.CreateUserRequest{
		ID:                  uuid.New().String(),
		UserName:            in.UserName,
		Email:               in.Email,
		EncodedPassword:     encodedPassword,
		EncodedAnswer:       encodedAnswer,
		PasswordQuestion:    in.PasswordQuestion,
		Salt:                salt,
		Format:              p.cfg.PasswordFormat,
		IsApproved:          in.IsApproved,
		RequiresUniqueEmail: p.cfg.RequiresUniqueEmail,
		CreatedAt:           now,
	}

	resp, err := p.users.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Status != status.Success {
		return nil, statusError("CreateUser", resp.Status, in.UserName)
	}

	return &domain.MembershipUser{
		ID:                    resp.ID,
		UserName:              in.UserName,
		Email:                 in.Email,
		PasswordQuestion:      in.PasswordQuestion,
		IsApproved:            in.IsApproved,
		CreatedAt:             resp.CreatedAt,
		LastLoginAt:           resp.CreatedAt,
		LastActivityAt:        resp.CreatedAt,
		LastPasswordChangedAt: resp.CreatedAt,
	}, nil
}

// ChangePassword replaces a password after verifying the old one. The new
// password is encoded with the account's existing salt and format.
func (p *MembershipProvider) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if err := validateName("username", username); err != nil {
		return err
	}

	ok, salt, format, err := p.checkPasswordDetailed(ctx, username, oldPassword, false, false)
	if err != nil {
		return err
	}
	if !ok {
		return &autherror.CredentialError{Status: status.WrongPassword, Err: autherror.ErrInvalidCredentials}
	}

	if err := p.validatePasswordPolicy(username, newPassword); err != nil {
		return err
	}
	encoded, err := p.codec.EncodePassword(newPassword, format, salt)
	if err != nil {
		return err
	}
	if len(encoded) > constant.MaxEncodedPasswordLength {
		return autherror.NewValidation("password", "encoded form exceeds the storage limit")
	}

	code, err := p.users.SetPassword(ctx, domain.SetPasswordRequest{
		UserName:        username,
		EncodedPassword: encoded,
	})
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("ChangePassword", code, username)
	}
	return nil
}

// ChangePasswordQuestionAndAnswer replaces the recovery question and answer
// after verifying the current password.
func (p *MembershipProvider) ChangePasswordQuestionAndAnswer(ctx context.Context, username, password, question, answer string) error {
	if err := validateName("username", username); err != nil {
		return err
	}
	if p.cfg.RequiresQuestionAndAnswer {
		if question == "" {
			return autherror.NewValidation("password_question", "must not be empty")
		}
		if answer == "" {
			return autherror.NewValidation("password_answer", "must not be empty")
		}
	}

	ok, salt, format, err := p.checkPasswordDetailed(ctx, username, password, false, false)
	if err != nil {
		return err
	}
	if !ok {
		return &autherror.CredentialError{Status: status.WrongPassword, Err: autherror.ErrInvalidCredentials}
	}

	encodedAnswer := ""
	if answer != "" {
		encodedAnswer, err = p.codec.EncodePassword(answer, format, salt)
		if err != nil {
			return err
		}
	}

	code, err := p.users.ChangeQuestionAnswer(ctx, domain.ChangeQuestionAnswerRequest{
		UserName:         username,
		PasswordQuestion: question,
		EncodedAnswer:    encodedAnswer,
	})
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("ChangePasswordQuestionAndAnswer", code, username)
	}
	return nil
}

// ResetPassword assigns a generated password after verifying the recovery
// answer. Returns the new plaintext password.
func (p *MembershipProvider) ResetPassword(ctx context.Context, username, answer string) (string, error) {
	if !p.cfg.EnablePasswordReset {
		return "", autherror.ErrPasswordResetDisabled
	}
	if err := p.gate.Ensure(ctx); err != nil {
		return "", err
	}
	if err := validateName("username", username); err != nil {
		return "", err
	}

	state, code, err := p.users.GetUserAuth(ctx, domain.GetUserAuthRequest{UserName: username})
	if err != nil {
		return "", err
	}
	if code != status.Success {
		return "", statusError("ResetPassword", code, username)
	}
	if state.IsLockedOut {
		return "", &autherror.CredentialError{Status: status.AccountLockedOut, Err: autherror.ErrAccountLockedOut}
	}

	if p.cfg.RequiresQuestionAndAnswer {
		if err := p.verifyAnswer(ctx, username, answer, state); err != nil {
			return "", err
		}
	}

	length := constant.GeneratedPasswordLength
	if p.cfg.MinRequiredPasswordLength > length {
		length = p.cfg.MinRequiredPasswordLength
	}
	newPassword, err := p.generator.Generate(length, p.cfg.MinRequiredNonAlphanumeric)
	if err != nil {
		return "", err
	}
	if p.validate != nil {
		if err := p.validate(username, newPassword); err != nil {
			return "", err
		}
	}

	encoded, err := p.codec.EncodePassword(newPassword, state.Format, state.Salt)
	if err != nil {
		return "", err
	}
	code, err = p.users.SetPassword(ctx, domain.SetPasswordRequest{
		UserName:        username,
		EncodedPassword: encoded,
		ResetCounters:   true,
	})
	if err != nil {
		return "", err
	}
	if code != status.Success {
		return "", statusError("ResetPassword", code, username)
	}
	return newPassword, nil
}

// GetPassword retrieves a stored password, decoding it when the format allows.
// The answer check and failure counting happen atomically in the backing store.
func (p *MembershipProvider) GetPassword(ctx context.Context, username, answer string) (string, error) {
	if !p.cfg.EnablePasswordRetrieval {
		return "", autherror.ErrPasswordRetrievalOff
	}
	if p.cfg.PasswordFormat == domain.PasswordFormatHashed {
		return "", autherror.ErrUnsupportedOperation
	}
	if err := p.gate.Ensure(ctx); err != nil {
		return "", err
	}
	if err := validateName("username", username); err != nil {
		return "", err
	}

	// The stored answer was encoded with the account's salt; fetch it first.
	state, code, err := p.users.GetUserAuth(ctx, domain.GetUserAuthRequest{UserName: username})
	if err != nil {
		return "", err
	}
	if code != status.Success {
		return "", statusError("GetPassword", code, username)
	}

	encodedAnswer := ""
	if p.cfg.RequiresQuestionAndAnswer {
		encodedAnswer, err = p.codec.EncodePassword(answer, state.Format, state.Salt)
		if err != nil {
			return "", err
		}
	}

	resp, err := p.users.GetPassword(ctx, domain.GetPasswordRequest{
		UserName:           username,
		EncodedAnswer:      encodedAnswer,
		RequiresAnswer:     p.cfg.RequiresQuestionAndAnswer,
		MaxInvalidAttempts: p.cfg.MaxInvalidPasswordAttempts,
		AttemptWindowMin:   p.cfg.PasswordAttemptWindow,
	})
	if err != nil {
		return "", err
	}
	if resp.Status != status.Success {
		return "", statusError("GetPassword", resp.Status, username)
	}

	return p.codec.UnencodePassword(resp.EncodedPassword, state.Format)
}

// GetUser fetches an account by username, optionally stamping last-activity.
func (p *MembershipProvider) GetUser(ctx context.Context, username string, updateActivity bool) (*domain.MembershipUser, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := validateName("username", username); err != nil {
		return nil, err
	}

	user, code, err := p.users.GetUserByName(ctx, username, updateActivity)
	if err != nil {
		return nil, err
	}
	if code != status.Success {
		return nil, statusError("GetUser", code, username)
	}
	return user, nil
}

// GetUserByID fetches an account by its provider key.
func (p *MembershipProvider) GetUserByID(ctx context.Context, id string) (*domain.MembershipUser, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, autherror.NewValidation("id", "must be a valid UUID")
	}

	user, code, err := p.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if code != status.Success {
		return nil, statusError("GetUserByID", code, id)
	}
	return user, nil
}

// GetUserNameByEmail resolves an email address to a username. With unique
// emails disabled the backing store returns the first match by creation order.
func (p *MembershipProvider) GetUserNameByEmail(ctx context.Context, email string) (string, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return "", err
	}
	if email == "" {
		return "", autherror.NewValidation("email", "must not be empty")
	}

	username, code, err := p.users.GetUserNameByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if code != status.Success {
		return "", statusError("GetUserNameByEmail", code, email)
	}
	return username, nil
}

// UpdateUser rewrites the mutable profile fields of an account.
func (p *MembershipProvider) UpdateUser(ctx context.Context, username, email, comment string, isApproved bool) error {
	if err := p.gate.Ensure(ctx); err != nil {
		return err
	}
	if err := validateName("username", username); err != nil {
		return err
	}
	if p.cfg.RequiresUniqueEmail && email == "" {
		return autherror.NewValidation("email", "must not be empty when unique emails are required")
	}

	code, err := p.users.UpdateUser(ctx, domain.UpdateUserRequest{
		UserName:            username,
		Email:               email,
		Comment:             comment,
		IsApproved:          isApproved,
		RequiresUniqueEmail: p.cfg.RequiresUniqueEmail,
	})
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("UpdateUser", code, username)
	}
	return nil
}

// DeleteUser removes an account and its role assignments.
func (p *MembershipProvider) DeleteUser(ctx context.Context, username string) error {
	if err := p.gate.Ensure(ctx); err != nil {
		return err
	}
	if err := validateName("username", username); err != nil {
		return err
	}

	code, err := p.users.DeleteUser(ctx, username)
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("DeleteUser", code, username)
	}
	return nil
}

// GetAllUsers returns one page of accounts plus the total account count.
func (p *MembershipProvider) GetAllUsers(ctx context.Context, pageIndex, pageSize int) ([]domain.MembershipUser, int, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, 0, err
	}
	if pageIndex < 0 {
		return nil, 0, autherror.NewValidation("page_index", "must not be negative")
	}
	if pageSize < 1 {
		return nil, 0, autherror.NewValidation("page_size", "must be positive")
	}

	users, total, err := p.users.GetAllUsers(ctx, pageIndex, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindUsersByName is not supported by this provider.
func (p *MembershipProvider) FindUsersByName(ctx context.Context, usernameToMatch string, pageIndex, pageSize int) ([]domain.MembershipUser, int, error) {
	return nil, 0, autherror.ErrUnsupportedOperation
}

// FindUsersByEmail is not supported by this provider.
func (p *MembershipProvider) FindUsersByEmail(ctx context.Context, emailToMatch string, pageIndex, pageSize int) ([]domain.MembershipUser, int, error) {
	return nil, 0, autherror.ErrUnsupportedOperation
}

// GetNumberOfUsersOnline is not supported by this provider.
func (p *MembershipProvider) GetNumberOfUsersOnline(ctx context.Context) (int, error) {
	return 0, autherror.ErrUnsupportedOperation
}
