package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/mocks"
)

func TestAddUsersToRoles_SingleChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	tx := mocks.NewMockRoleBatchTx(ctrl)
	f.roles.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		AddUsersToRoles(gomock.Any(), "alice,bob", "admins,auditors").
		Return(domain.RoleBatchResult{Status: 0}, nil)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)

	err := f.provider.AddUsersToRoles(context.Background(),
		[]string{"alice", "bob"}, []string{"admins", "auditors"})
	require.NoError(t, err)
}

func TestAddUsersToRoles_ChunksLargeBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	usernames := make([]string, 600)
	for i := range usernames {
		usernames[i] = fmt.Sprintf("user%04d", i)
	}
	rolenames := []string{"admins", "auditors", "operators"}

	var calls [][2]string
	tx := mocks.NewMockRoleBatchTx(ctrl)
	f.roles.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		AddUsersToRoles(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, uc, rc string) (domain.RoleBatchResult, error) {
			calls = append(calls, [2]string{uc, rc})
			return domain.RoleBatchResult{Status: 0}, nil
		}).
		AnyTimes()
	tx.EXPECT().Commit(gomock.Any()).Return(nil)

	err := f.provider.AddUsersToRoles(context.Background(), usernames, rolenames)
	require.NoError(t, err)

	// 600 eight-char names plus delimiters cannot fit one 4000-char chunk,
	// so the username list must split while the role list stays whole.
	require.Greater(t, len(calls), 1)

	var reassembled []string
	for _, call := range calls {
		assert.LessOrEqual(t, len(call[0]), 4000)
		assert.Equal(t, "admins,auditors,operators", call[1])
		reassembled = append(reassembled, strings.Split(call[0], ",")...)
	}
	assert.Equal(t, usernames, reassembled)
}

func TestAddUsersToRoles_RollsBackOnUnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	tx := mocks.NewMockRoleBatchTx(ctrl)
	f.roles.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		AddUsersToRoles(gomock.Any(), "alice", "ghosts").
		Return(domain.RoleBatchResult{Status: 12, Name: "ghosts"}, nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	// No Commit.

	err := f.provider.AddUsersToRoles(context.Background(), []string{"alice"}, []string{"ghosts"})
	require.ErrorIs(t, err, autherror.ErrRoleNotFound)
}

func TestAddUsersToRoles_RollsBackLaterChunkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	usernames := make([]string, 600)
	for i := range usernames {
		usernames[i] = fmt.Sprintf("user%04d", i)
	}

	applied := 0
	tx := mocks.NewMockRoleBatchTx(ctrl)
	f.roles.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		AddUsersToRoles(gomock.Any(), gomock.Any(), "admins").
		DoAndReturn(func(_ context.Context, uc, rc string) (domain.RoleBatchResult, error) {
			applied++
			if applied > 1 {
				return domain.RoleBatchResult{Status: 14, Name: "user0444"}, nil
			}
			return domain.RoleBatchResult{Status: 0}, nil
		}).
		Times(2)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	err := f.provider.AddUsersToRoles(context.Background(), usernames, []string{"admins"})
	require.ErrorIs(t, err, autherror.ErrUserAlreadyInRole)
}

func TestRemoveUsersFromRoles_UserNotInRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	tx := mocks.NewMockRoleBatchTx(ctrl)
	f.roles.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		RemoveUsersFromRoles(gomock.Any(), "alice", "admins").
		Return(domain.RoleBatchResult{Status: 15, Name: "alice"}, nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	err := f.provider.RemoveUsersFromRoles(context.Background(), []string{"alice"}, []string{"admins"})
	require.ErrorIs(t, err, autherror.ErrUserNotInRole)
}

func TestRoleBatch_ValidationFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()
	// No BeginBatch: every case fails before the transaction opens.

	cases := []struct {
		name      string
		usernames []string
		rolenames []string
	}{
		{"empty usernames", nil, []string{"admins"}},
		{"empty rolenames", []string{"alice"}, nil},
		{"comma in username", []string{"al,ice"}, []string{"admins"}},
		{"comma in rolename", []string{"alice"}, []string{"adm,ins"}},
		{"duplicate username", []string{"alice", "alice"}, []string{"admins"}},
		{"duplicate rolename", []string{"alice"}, []string{"admins", "admins"}},
		{"blank rolename", []string{"alice"}, []string{"  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.provider.AddUsersToRoles(context.Background(), tc.usernames, tc.rolenames)
			require.Error(t, err)
			assert.True(t, autherror.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().CreateRole(gomock.Any(), "admins").Return(0, nil)

	require.NoError(t, f.provider.CreateRole(context.Background(), "admins"))
}

func TestCreateRole_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().CreateRole(gomock.Any(), "admins").Return(13, nil)

	err := f.provider.CreateRole(context.Background(), "admins")
	require.ErrorIs(t, err, autherror.ErrDuplicateRole)
}

func TestDeleteRole_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())

	err := f.provider.DeleteRole(context.Background(), "admins", true)
	require.ErrorIs(t, err, autherror.ErrUnsupportedOperation)
}

func TestIsUserInRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().IsUserInRole(gomock.Any(), "alice", "admins").Return(true, 0, nil)

	inRole, err := f.provider.IsUserInRole(context.Background(), "alice", "admins")
	require.NoError(t, err)
	assert.True(t, inRole)
}

func TestGetRolesForUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().GetRolesForUser(gomock.Any(), "ghost").Return(nil, 1, nil)

	_, err := f.provider.GetRolesForUser(context.Background(), "ghost")
	require.ErrorIs(t, err, autherror.ErrUserNotFound)
}

func TestGetUsersInRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().GetUsersInRole(gomock.Any(), "admins").Return([]string{"alice", "bob"}, 0, nil)

	users, err := f.provider.GetUsersInRole(context.Background(), "admins")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestFindUsersInRole_RoleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().FindUsersInRole(gomock.Any(), "ghosts", "ali%").Return(nil, 12, nil)

	_, err := f.provider.FindUsersInRole(context.Background(), "ghosts", "ali%")
	require.ErrorIs(t, err, autherror.ErrRoleNotFound)
}

func TestGetAllRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestFixture(t, ctrl, testConfig())
	f.expectCompatibleSchema()

	f.roles.EXPECT().GetAllRoles(gomock.Any()).Return([]string{"admins"}, nil)

	roles, err := f.provider.GetAllRoles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"admins"}, roles)
}
