package service

import (
	"fmt"
	"strings"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
)

// validatePasswordPolicy applies the configured length, character-class and
// regular-expression rules, then the custom validation hook. Runs before any
// backing-store interaction.
func (p *MembershipProvider) validatePasswordPolicy(username, password string) error {
	if password == "" {
		return autherror.NewValidation("password", "must not be empty")
	}
	if len(password) < p.cfg.MinRequiredPasswordLength {
		return autherror.NewValidation("password",
			fmt.Sprintf("must be at least %d characters", p.cfg.MinRequiredPasswordLength))
	}
	if len(password) > constant.MaxEncodedPasswordLength {
		return autherror.NewValidation("password",
			fmt.Sprintf("must be at most %d characters", constant.MaxEncodedPasswordLength))
	}

	nonAlnum := 0
	for _, r := range password {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			nonAlnum++
		}
	}
	if nonAlnum < p.cfg.MinRequiredNonAlphanumeric {
		return autherror.NewValidation("password",
			fmt.Sprintf("must contain at least %d non-alphanumeric characters", p.cfg.MinRequiredNonAlphanumeric))
	}

	if re := p.cfg.PasswordRegex(); re != nil && !re.MatchString(password) {
		return autherror.NewValidation("password", "does not satisfy the password strength expression")
	}

	if p.validate != nil {
		if err := p.validate(username, password); err != nil {
			return err
		}
	}

	return nil
}

// validateName rejects empty, over-long and delimiter-containing names.
func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return autherror.NewValidation(field, "must not be empty")
	}
	if len(name) > constant.MaxNameLength {
		return autherror.NewValidation(field,
			fmt.Sprintf("must be at most %d characters", constant.MaxNameLength))
	}
	if strings.Contains(name, constant.NameDelimiter) {
		return autherror.NewValidation(field, "must not contain a comma")
	}
	return nil
}

// validateNameList applies validateName to every element and rejects empty
// and duplicate-containing lists.
func validateNameList(field string, names []string) error {
	if len(names) == 0 {
		return autherror.NewValidation(field, "must not be empty")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := validateName(field, name); err != nil {
			return err
		}
		if seen[name] {
			return autherror.NewValidation(field, fmt.Sprintf("contains duplicate element %q", name))
		}
		seen[name] = true
	}
	return nil
}
