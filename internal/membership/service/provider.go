package service

import (
	"errors"

	"github.com/AnthoniusHendriyanto/membership-service/config"
	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/codec"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/schema"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/status"
)

// schemaFeatures are the feature names probed by the schema version gate
// before the first data operation.
var schemaFeatures = []string{"Membership", "Role"}

// PasswordValidator is a pluggable hook that may veto a password before any
// backing-store interaction. A non-nil return rejects the operation.
type PasswordValidator func(username, password string) error

// MembershipProvider implements the membership and role operations over the
// stored-function backing store.
type MembershipProvider struct {
	cfg       *config.Config
	users     domain.UserRepository
	roles     domain.RoleRepository
	codec     *codec.Codec
	gate      *schema.Gate
	generator PasswordGenerator
	validate  PasswordValidator
}

// Option customizes provider construction.
type Option func(*MembershipProvider)

// WithPasswordValidator installs the custom validation hook.
func WithPasswordValidator(v PasswordValidator) Option {
	return func(p *MembershipProvider) { p.validate = v }
}

// WithPasswordGenerator replaces the default random password generator.
func WithPasswordGenerator(g PasswordGenerator) Option {
	return func(p *MembershipProvider) { p.generator = g }
}

// NewMembershipProvider wires the provider. The schema gate is created here
// and lives as long as the provider instance.
func NewMembershipProvider(cfg *config.Config, users domain.UserRepository, roles domain.RoleRepository, opts ...Option) (*MembershipProvider, error) {
	c, err := codec.New(cfg.HashAlgorithm, cfg.DecryptionKey)
	if err != nil {
		return nil, err
	}

	p := &MembershipProvider{
		cfg:       cfg,
		users:     users,
		roles:     roles,
		codec:     c,
		gate:      schema.NewGate(users, schemaFeatures),
		generator: NewRandomPasswordGenerator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// statusError maps a non-zero backing-store status code onto the error
// taxonomy. Credential codes become CredentialError; known state conflicts
// become their sentinel, carrying the offending name when the store reported
// one; anything else is a generic provider error.
func statusError(op string, code int, name string) error {
	var base error
	switch code {
	case status.UserNotFound:
		base = autherror.ErrUserNotFound
	case status.WrongPassword:
		base = autherror.ErrInvalidCredentials
	case status.WrongAnswer:
		base = autherror.ErrWrongPasswordAnswer
	case status.AccountLockedOut:
		base = autherror.ErrAccountLockedOut
	case status.DuplicateUserName:
		base = autherror.ErrDuplicateUserName
	case status.DuplicateEmail:
		base = autherror.ErrDuplicateEmail
	case status.RoleNotFound:
		base = autherror.ErrRoleNotFound
	case status.DuplicateRole:
		base = autherror.ErrDuplicateRole
	case status.UserAlreadyInRole:
		base = autherror.ErrUserAlreadyInRole
	case status.UserNotInRole:
		base = autherror.ErrUserNotInRole
	}

	if base != nil {
		if status.IsCredentialFailure(code) {
			return &autherror.CredentialError{Status: code, Err: base}
		}
		if name != "" {
			return &autherror.ProviderError{Op: op, Status: code, Name: name, Err: base}
		}
		return base
	}

	_, msg := status.Translate(code)
	return &autherror.ProviderError{Op: op, Status: code, Err: errors.New(msg)}
}
