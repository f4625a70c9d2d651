package service

import (
	"context"
	"strings"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/status"
	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
)

// chunkNames greedily packs names into comma-joined strings no longer than
// constant.RoleChunkMaxChars. Order is preserved; every name appears in
// exactly one chunk. Individual names are bounded at 256 characters so a
// single name always fits.
func chunkNames(names []string) []string {
	chunks := make([]string, 0, 1)
	var b strings.Builder
	for _, name := range names {
		if b.Len() > 0 && b.Len()+len(constant.NameDelimiter)+len(name) > constant.RoleChunkMaxChars {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteString(constant.NameDelimiter)
		}
		b.WriteString(name)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

type batchCall func(ctx context.Context, tx domain.RoleBatchTx, usernames, rolenames string) (domain.RoleBatchResult, error)

// runRoleBatch executes one chunked assignment operation inside a single
// transaction. Every username-chunk is paired with every rolename-chunk; the
// first failed pair rolls back everything already applied.
func (p *MembershipProvider) runRoleBatch(ctx context.Context, op string, usernames, rolenames []string, call batchCall) error {
	if err := p.gate.Ensure(ctx); err != nil {
		return err
	}
	if err := validateNameList("usernames", usernames); err != nil {
		return err
	}
	if err := validateNameList("rolenames", rolenames); err != nil {
		return err
	}

	userChunks := chunkNames(usernames)
	roleChunks := chunkNames(rolenames)

	tx, err := p.roles.BeginBatch(ctx)
	if err != nil {
		return err
	}

	for _, uc := range userChunks {
		for _, rc := range roleChunks {
			res, err := call(ctx, tx, uc, rc)
			if err != nil {
				_ = tx.Rollback(ctx)
				return err
			}
			if res.Status != status.Success {
				_ = tx.Rollback(ctx)
				return statusError(op, res.Status, res.Name)
			}
		}
	}

	return tx.Commit(ctx)
}

// AddUsersToRoles assigns every listed user to every listed role, atomically.
func (p *MembershipProvider) AddUsersToRoles(ctx context.Context, usernames, rolenames []string) error {
	return p.runRoleBatch(ctx, "AddUsersToRoles", usernames, rolenames,
		func(ctx context.Context, tx domain.RoleBatchTx, uc, rc string) (domain.RoleBatchResult, error) {
			return tx.AddUsersToRoles(ctx, uc, rc)
		})
}

// RemoveUsersFromRoles removes every listed user from every listed role,
// atomically. Every named membership must exist.
func (p *MembershipProvider) RemoveUsersFromRoles(ctx context.Context, usernames, rolenames []string) error {
	return p.runRoleBatch(ctx, "RemoveUsersFromRoles", usernames, rolenames,
		func(ctx context.Context, tx domain.RoleBatchTx, uc, rc string) (domain.RoleBatchResult, error) {
			return tx.RemoveUsersFromRoles(ctx, uc, rc)
		})
}

// CreateRole creates a new empty role.
func (p *MembershipProvider) CreateRole(ctx context.Context, rolename string) error {
	if err := p.gate.Ensure(ctx); err != nil {
		return err
	}
	if err := validateName("rolename", rolename); err != nil {
		return err
	}

	code, err := p.roles.CreateRole(ctx, rolename)
	if err != nil {
		return err
	}
	if code != status.Success {
		return statusError("CreateRole", code, rolename)
	}
	return nil
}

// DeleteRole is not supported by this provider.
func (p *MembershipProvider) DeleteRole(ctx context.Context, rolename string, throwOnPopulated bool) error {
	return autherror.ErrUnsupportedOperation
}

// RoleExists reports whether a role with the given name exists.
func (p *MembershipProvider) RoleExists(ctx context.Context, rolename string) (bool, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return false, err
	}
	if err := validateName("rolename", rolename); err != nil {
		return false, err
	}

	exists, code, err := p.roles.RoleExists(ctx, rolename)
	if err != nil {
		return false, err
	}
	if code != status.Success {
		return false, statusError("RoleExists", code, rolename)
	}
	return exists, nil
}

// IsUserInRole reports whether the user holds the role.
func (p *MembershipProvider) IsUserInRole(ctx context.Context, username, rolename string) (bool, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return false, err
	}
	if err := validateName("username", username); err != nil {
		return false, err
	}
	if err := validateName("rolename", rolename); err != nil {
		return false, err
	}

	inRole, code, err := p.roles.IsUserInRole(ctx, username, rolename)
	if err != nil {
		return false, err
	}
	if code != status.Success {
		return false, statusError("IsUserInRole", code, username)
	}
	return inRole, nil
}

// GetRolesForUser lists the roles held by a user.
func (p *MembershipProvider) GetRolesForUser(ctx context.Context, username string) ([]string, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := validateName("username", username); err != nil {
		return nil, err
	}

	roles, code, err := p.roles.GetRolesForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if code != status.Success {
		return nil, statusError("GetRolesForUser", code, username)
	}
	return roles, nil
}

// GetUsersInRole lists the usernames holding a role.
func (p *MembershipProvider) GetUsersInRole(ctx context.Context, rolename string) ([]string, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := validateName("rolename", rolename); err != nil {
		return nil, err
	}

	users, code, err := p.roles.GetUsersInRole(ctx, rolename)
	if err != nil {
		return nil, err
	}
	if code != status.Success {
		return nil, statusError("GetUsersInRole", code, rolename)
	}
	return users, nil
}

// GetAllRoles lists every role name.
func (p *MembershipProvider) GetAllRoles(ctx context.Context) ([]string, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	return p.roles.GetAllRoles(ctx)
}

// FindUsersInRole lists the usernames in a role whose name matches the given
// pattern.
func (p *MembershipProvider) FindUsersInRole(ctx context.Context, rolename, usernameToMatch string) ([]string, error) {
	if err := p.gate.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := validateName("rolename", rolename); err != nil {
		return nil, err
	}
	if usernameToMatch == "" {
		return nil, autherror.NewValidation("username_to_match", "must not be empty")
	}

	users, code, err := p.roles.FindUsersInRole(ctx, rolename, usernameToMatch)
	if err != nil {
		return nil, err
	}
	if code != status.Success {
		return nil, statusError("FindUsersInRole", code, rolename)
	}
	return users, nil
}
