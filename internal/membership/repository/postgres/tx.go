package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/jackc/pgx/v5"
)

// roleBatchTx runs chunked role-assignment calls on one pgx transaction.
// Chunks execute strictly sequentially; a mid-sequence failure must still
// allow a clean full rollback.
type roleBatchTx struct {
	tx      pgx.Tx
	timeout time.Duration
}

func (t *roleBatchTx) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.timeout)
}

func (t *roleBatchTx) chunkCall(ctx context.Context, query, usernames, rolenames string) (domain.RoleBatchResult, error) {
	ctx, cancel := t.callCtx(ctx)
	defer cancel()

	var (
		result domain.RoleBatchResult
		name   *string
	)
	err := t.tx.QueryRow(ctx, query, usernames, rolenames).Scan(&result.Status, &name)
	if err != nil {
		return domain.RoleBatchResult{}, fmt.Errorf("role batch call failed: %w", err)
	}
	if name != nil {
		result.Name = *name
	}
	return result, nil
}

// AddUsersToRoles assigns every user in the comma-joined username chunk to
// every role in the rolename chunk.
func (t *roleBatchTx) AddUsersToRoles(ctx context.Context, usernames, rolenames string) (domain.RoleBatchResult, error) {
	return t.chunkCall(ctx,
		`SELECT status, offending_name FROM membership_add_users_to_roles($1, $2)`,
		usernames, rolenames)
}

// RemoveUsersFromRoles removes every user in the username chunk from every
// role in the rolename chunk.
func (t *roleBatchTx) RemoveUsersFromRoles(ctx context.Context, usernames, rolenames string) (domain.RoleBatchResult, error) {
	return t.chunkCall(ctx,
		`SELECT status, offending_name FROM membership_remove_users_from_roles($1, $2)`,
		usernames, rolenames)
}

func (t *roleBatchTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *roleBatchTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
