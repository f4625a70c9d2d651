package service_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/AnthoniusHendriyanto/membership-service/config"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/service"
	"github.com/AnthoniusHendriyanto/membership-service/internal/mocks"
)

// testConfig returns a permissive provider configuration used by most tests.
// Clear storage keeps encoded values equal to their plaintext so expectations
// stay readable.
func testConfig() *config.Config {
	return &config.Config{
		ApplicationName:            "test-app",
		MaxInvalidPasswordAttempts: 5,
		PasswordAttemptWindow:      10,
		MinRequiredPasswordLength:  7,
		MinRequiredNonAlphanumeric: 0,
		PasswordFormat:             domain.PasswordFormatClear,
		HashAlgorithm:              "SHA1",
		EnablePasswordReset:        true,
		EnablePasswordRetrieval:    false,
		RequiresQuestionAndAnswer:  true,
		RequiresUniqueEmail:        true,
	}
}

type testFixture struct {
	users     *mocks.MockUserRepository
	roles     *mocks.MockRoleRepository
	generator *mocks.MockPasswordGenerator
	provider  *service.MembershipProvider
}

func newTestFixture(t *testing.T, ctrl *gomock.Controller, cfg *config.Config) *testFixture {
	t.Helper()

	f := &testFixture{
		users:     mocks.NewMockUserRepository(ctrl),
		roles:     mocks.NewMockRoleRepository(ctrl),
		generator: mocks.NewMockPasswordGenerator(ctrl),
	}

	p, err := service.NewMembershipProvider(cfg, f.users, f.roles,
		service.WithPasswordGenerator(f.generator))
	require.NoError(t, err)
	f.provider = p
	return f
}

// expectCompatibleSchema satisfies the version gate's one-time probes.
func (f *testFixture) expectCompatibleSchema() {
	f.users.EXPECT().ProbeSchemaVersion(gomock.Any(), "Membership").Return(0, nil)
	f.users.EXPECT().ProbeSchemaVersion(gomock.Any(), "Role").Return(0, nil)
}

func TestNewMembershipProvider_RejectsUnknownHashAlgorithm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.HashAlgorithm = "MD5"

	_, err := service.NewMembershipProvider(cfg,
		mocks.NewMockUserRepository(ctrl), mocks.NewMockRoleRepository(ctrl))
	require.Error(t, err)
}
