package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/AnthoniusHendriyanto/membership-service/internal/membership/repository/postgres"
)

// TestCreateRole covers role creation and the duplicate status path.
func TestCreateRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock, testTimeout)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT membership_create_role").
			WithArgs("admins").
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(0))

		status, err := r.CreateRole(ctx, "admins")
		require.NoError(t, err)
		assert.Equal(t, 0, status)
	})

	t.Run("duplicate", func(t *testing.T) {
		mock.ExpectQuery("SELECT membership_create_role").
			WithArgs("admins").
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(13))

		status, err := r.CreateRole(ctx, "admins")
		require.NoError(t, err)
		assert.Equal(t, 13, status)
	})
}

// TestRoleExists covers the existence probe.
func TestRoleExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock, testTimeout)
	ctx := context.Background()

	mock.ExpectQuery("FROM membership_role_exists").
		WithArgs("admins").
		WillReturnRows(pgxmock.NewRows([]string{"status", "role_exists"}).AddRow(0, true))

	exists, status, err := r.RoleExists(ctx, "admins")
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.True(t, exists)
}

// TestGetRolesForUser covers the (status, name) row protocol.
func TestGetRolesForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock, testTimeout)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		admins := "admins"
		auditors := "auditors"
		mock.ExpectQuery("FROM membership_get_roles_for_user").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"status", "name"}).
				AddRow(0, &admins).
				AddRow(0, &auditors))

		roles, status, err := r.GetRolesForUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 0, status)
		assert.Equal(t, []string{"admins", "auditors"}, roles)
	})

	t.Run("user not found arrives as a status row", func(t *testing.T) {
		mock.ExpectQuery("FROM membership_get_roles_for_user").
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows([]string{"status", "name"}).
				AddRow(1, (*string)(nil)))

		roles, status, err := r.GetRolesForUser(ctx, "ghost")
		require.NoError(t, err)
		assert.Equal(t, 1, status)
		assert.Nil(t, roles)
	})

	t.Run("no roles yields an empty list", func(t *testing.T) {
		mock.ExpectQuery("FROM membership_get_roles_for_user").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"status", "name"}).
				AddRow(0, (*string)(nil)))

		roles, status, err := r.GetRolesForUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 0, status)
		assert.Empty(t, roles)
	})
}

// TestGetAllRoles covers the plain listing.
func TestGetAllRoles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock, testTimeout)
	ctx := context.Background()

	mock.ExpectQuery("FROM membership_get_all_roles").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).
			AddRow("admins").
			AddRow("auditors"))

	roles, err := r.GetAllRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admins", "auditors"}, roles)
}

// TestRoleBatch covers the transaction scope: chunk calls, commit and the
// rollback-on-failure path.
func TestRoleBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("commit after successful chunks", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock, testTimeout)

		mock.ExpectBegin()
		mock.ExpectQuery("FROM membership_add_users_to_roles").
			WithArgs("alice,bob", "admins").
			WillReturnRows(pgxmock.NewRows([]string{"status", "offending_name"}).
				AddRow(0, (*string)(nil)))
		mock.ExpectCommit()

		tx, err := r.BeginBatch(ctx)
		require.NoError(t, err)

		res, err := tx.AddUsersToRoles(ctx, "alice,bob", "admins")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Status)

		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed chunk reports the offending name", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock, testTimeout)

		ghost := "ghosts"
		mock.ExpectBegin()
		mock.ExpectQuery("FROM membership_add_users_to_roles").
			WithArgs("alice", "ghosts").
			WillReturnRows(pgxmock.NewRows([]string{"status", "offending_name"}).
				AddRow(12, &ghost))
		mock.ExpectRollback()

		tx, err := r.BeginBatch(ctx)
		require.NoError(t, err)

		res, err := tx.AddUsersToRoles(ctx, "alice", "ghosts")
		require.NoError(t, err)
		assert.Equal(t, 12, res.Status)
		assert.Equal(t, "ghosts", res.Name)

		require.NoError(t, tx.Rollback(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("remove call on same transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock, testTimeout)

		mock.ExpectBegin()
		mock.ExpectQuery("FROM membership_remove_users_from_roles").
			WithArgs("alice", "admins").
			WillReturnRows(pgxmock.NewRows([]string{"status", "offending_name"}).
				AddRow(0, (*string)(nil)))
		mock.ExpectCommit()

		tx, err := r.BeginBatch(ctx)
		require.NoError(t, err)

		res, err := tx.RemoveUsersFromRoles(ctx, "alice", "admins")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Status)

		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure surfaces", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock, testTimeout)

		mock.ExpectBegin().WillReturnError(fmt.Errorf("db down"))

		_, err = r.BeginBatch(ctx)
		assert.Error(t, err)
	})
}
