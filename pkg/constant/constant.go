package constant

const (
	// SaltSizeBytes is the number of random bytes in a password salt.
	SaltSizeBytes = 16

	// MaxEncodedPasswordLength is the longest encoded password the backing
	// store accepts. Enforced by the service, not the codec.
	MaxEncodedPasswordLength = 128

	// MaxNameLength bounds usernames, role names and e-mail addresses.
	MaxNameLength = 256

	// MaxApplicationNameLength bounds the configured application name.
	MaxApplicationNameLength = 256

	// RoleChunkMaxChars is the ceiling on a comma-joined name list sent to
	// the backing store in a single role-assignment call.
	RoleChunkMaxChars = 4000

	// NameDelimiter joins chunked name lists; names must not contain it.
	NameDelimiter = ","
)

const (
	DefaultPort                     = "8080"
	DefaultEnablePasswordRetrieval  = false
	DefaultEnablePasswordReset      = true
	DefaultRequiresQuestionAnswer   = true
	DefaultRequiresUniqueEmail      = true
	DefaultMaxInvalidPasswordTries  = 5
	DefaultPasswordAttemptWindowMin = 10
	DefaultMinPasswordLength        = 7
	DefaultMinNonAlphanumericChars  = 1
	DefaultPasswordFormat           = "Hashed"
	DefaultHashAlgorithm            = "SHA1"
	DefaultCommandTimeoutSec        = 30
	DefaultAccessTokenExpiryMin     = 15

	// GeneratedPasswordLength is the length of passwords minted by
	// ResetPassword. Long enough to satisfy any accepted policy.
	GeneratedPasswordLength = 14
)
