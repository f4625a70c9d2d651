package postgres

import (
	"context"
	"fmt"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/jackc/pgx/v5"
)

// CreateRole adds a role; the store reports a duplicate via its status code.
func (r *PostgresRepository) CreateRole(ctx context.Context, rolename string) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_create_role($1)`, rolename).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to create role: %w", err)
	}
	return status, nil
}

// RoleExists reports whether a role is present.
func (r *PostgresRepository) RoleExists(ctx context.Context, rolename string) (bool, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var (
		status int
		exists bool
	)
	err := r.db.QueryRow(ctx, `SELECT status, role_exists FROM membership_role_exists($1)`, rolename).
		Scan(&status, &exists)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check role existence: %w", err)
	}
	return exists, status, nil
}

// IsUserInRole reports whether a user holds a role.
func (r *PostgresRepository) IsUserInRole(ctx context.Context, username, rolename string) (bool, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var (
		status int
		inRole bool
	)
	err := r.db.QueryRow(ctx, `SELECT status, is_in_role FROM membership_is_user_in_role($1, $2)`, username, rolename).
		Scan(&status, &inRole)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check role membership: %w", err)
	}
	return inRole, status, nil
}

// scanNameList reads (status, name) rows: failures arrive as a single row
// with a non-zero status and a null name.
func scanNameList(rows pgx.Rows) ([]string, int, error) {
	defer rows.Close()

	var names []string
	for rows.Next() {
		var (
			status int
			name   *string
		)
		if err := rows.Scan(&status, &name); err != nil {
			return nil, 0, fmt.Errorf("failed to scan name row: %w", err)
		}
		if status != 0 {
			return nil, status, nil
		}
		if name != nil {
			names = append(names, *name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read name rows: %w", err)
	}
	return names, 0, nil
}

// GetRolesForUser lists the roles held by a user.
func (r *PostgresRepository) GetRolesForUser(ctx context.Context, username string) ([]string, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT status, name FROM membership_get_roles_for_user($1)`, username)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get roles for user: %w", err)
	}
	return scanNameList(rows)
}

// GetUsersInRole lists the users holding a role.
func (r *PostgresRepository) GetUsersInRole(ctx context.Context, rolename string) ([]string, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT status, name FROM membership_get_users_in_role($1)`, rolename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users in role: %w", err)
	}
	return scanNameList(rows)
}

// FindUsersInRole lists the users in a role whose name matches the pattern.
func (r *PostgresRepository) FindUsersInRole(ctx context.Context, rolename, usernameToMatch string) ([]string, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT status, name FROM membership_find_users_in_role($1, $2)`, rolename, usernameToMatch)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find users in role: %w", err)
	}
	return scanNameList(rows)
}

// GetAllRoles lists every role name.
func (r *PostgresRepository) GetAllRoles(ctx context.Context) ([]string, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT name FROM membership_get_all_roles()`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read role rows: %w", err)
	}
	return roles, nil
}

// BeginBatch opens the transaction scope covering one multi-chunk
// role-assignment operation.
func (r *PostgresRepository) BeginBatch(ctx context.Context) (domain.RoleBatchTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin role batch transaction: %w", err)
	}
	return &roleBatchTx{tx: tx, timeout: r.timeout}, nil
}
