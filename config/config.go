package config

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
	"github.com/joho/godotenv"
)

// Config is the full provider configuration, validated eagerly at startup.
type Config struct {
	Env  string
	Port string

	DBURL           string
	ApplicationName string
	CommandTimeout  int // seconds

	EnablePasswordRetrieval    bool
	EnablePasswordReset        bool
	RequiresQuestionAndAnswer  bool
	RequiresUniqueEmail        bool
	MaxInvalidPasswordAttempts int
	PasswordAttemptWindow      int // minutes
	MinRequiredPasswordLength  int
	MinRequiredNonAlphanumeric int
	PasswordStrengthRegex      string
	PasswordFormat             domain.PasswordFormat
	HashAlgorithm              string
	DecryptionKey              []byte

	AccessTokenSecret string
	AccessExpiryMin   int

	// compiled form of PasswordStrengthRegex; nil when unset
	passwordRegex *regexp.Regexp
}

// PasswordRegex returns the compiled password strength expression, or nil
// when none is configured.
func (c *Config) PasswordRegex() *regexp.Regexp { return c.passwordRegex }

// Load reads configuration from the environment layered over an optional
// config/.env.<env> file and exits fatally on missing or invalid values.
// Process environment variables always take precedence over file values.
func Load() *Config {
	env := getEnv("ENV", "development")
	l := newLoader(env)

	cfg := &Config{
		Env:                        env,
		Port:                       l.get("PORT", constant.DefaultPort),
		DBURL:                      l.mustGet("DB_URL"),
		ApplicationName:            l.get("APPLICATION_NAME", "/"),
		CommandTimeout:             l.getInt("COMMAND_TIMEOUT", constant.DefaultCommandTimeoutSec),
		EnablePasswordRetrieval:    l.getBool("ENABLE_PASSWORD_RETRIEVAL", constant.DefaultEnablePasswordRetrieval),
		EnablePasswordReset:        l.getBool("ENABLE_PASSWORD_RESET", constant.DefaultEnablePasswordReset),
		RequiresQuestionAndAnswer:  l.getBool("REQUIRES_QUESTION_AND_ANSWER", constant.DefaultRequiresQuestionAnswer),
		RequiresUniqueEmail:        l.getBool("REQUIRES_UNIQUE_EMAIL", constant.DefaultRequiresUniqueEmail),
		MaxInvalidPasswordAttempts: l.getInt("MAX_INVALID_PASSWORD_ATTEMPTS", constant.DefaultMaxInvalidPasswordTries),
		PasswordAttemptWindow:      l.getInt("PASSWORD_ATTEMPT_WINDOW", constant.DefaultPasswordAttemptWindowMin),
		MinRequiredPasswordLength:  l.getInt("MIN_REQUIRED_PASSWORD_LENGTH", constant.DefaultMinPasswordLength),
		MinRequiredNonAlphanumeric: l.getInt("MIN_REQUIRED_NON_ALPHANUMERIC_CHARACTERS", constant.DefaultMinNonAlphanumericChars),
		PasswordStrengthRegex:      l.get("PASSWORD_STRENGTH_REGULAR_EXPRESSION", ""),
		HashAlgorithm:              l.get("HASH_ALGORITHM", constant.DefaultHashAlgorithm),
		AccessTokenSecret:          l.mustGet("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:            l.getInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessTokenExpiryMin),
	}

	format, err := domain.ParsePasswordFormat(l.get("PASSWORD_FORMAT", constant.DefaultPasswordFormat))
	if err != nil {
		log.Fatalf("Invalid PASSWORD_FORMAT: %v", err)
	}
	cfg.PasswordFormat = format

	if keyHex := l.get("DECRYPTION_KEY", ""); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			log.Fatalf("Invalid DECRYPTION_KEY: %v", err)
		}
		cfg.DecryptionKey = key
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// loader resolves keys from the process environment first, then from the
// values read out of config/.env.dev or config/.env.prod.
type loader struct {
	fileVals map[string]string
}

func newLoader(env string) *loader {
	suffix := "dev"
	if env == "production" {
		suffix = "prod"
	}
	vals, err := godotenv.Read("config/.env." + suffix)
	if err != nil {
		vals = map[string]string{}
	}
	return &loader{fileVals: vals}
}

func (l *loader) get(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := l.fileVals[key]; value != "" {
		return value
	}
	return defaultVal
}

func (l *loader) mustGet(key string) string {
	if value := l.get(key, ""); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func (l *loader) getInt(key string, defaultVal int) int {
	valStr := l.get(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func (l *loader) getBool(key string, defaultVal bool) bool {
	valStr := l.get(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}

// recognized settings keys for FromSettings, mirroring the provider's
// initialization dictionary.
var settingsKeys = map[string]bool{
	"connectionStringName":                 true,
	"enablePasswordRetrieval":              true,
	"enablePasswordReset":                  true,
	"requiresQuestionAndAnswer":            true,
	"requiresUniqueEmail":                  true,
	"maxInvalidPasswordAttempts":           true,
	"passwordAttemptWindow":                true,
	"minRequiredPasswordLength":            true,
	"minRequiredNonAlphanumericCharacters": true,
	"passwordStrengthRegularExpression":    true,
	"passwordFormat":                       true,
	"applicationName":                      true,
	"commandTimeout":                       true,
	"decryptionKey":                        true,
	"hashAlgorithm":                        true,
}

// FromSettings builds a Config from a settings dictionary, consuming each
// recognized key exactly as enumerated in the provider contract. Any
// unrecognized key is a configuration error.
func FromSettings(settings map[string]string) (*Config, error) {
	for key := range settings {
		if !settingsKeys[key] {
			return nil, fmt.Errorf("unrecognized configuration key %q", key)
		}
	}

	cfg := &Config{
		Env:                   "library",
		DBURL:                 settings["connectionStringName"],
		ApplicationName:       pick(settings, "applicationName", "/"),
		PasswordStrengthRegex: settings["passwordStrengthRegularExpression"],
		HashAlgorithm:         pick(settings, "hashAlgorithm", constant.DefaultHashAlgorithm),
	}

	var err error
	if cfg.EnablePasswordRetrieval, err = pickBool(settings, "enablePasswordRetrieval", constant.DefaultEnablePasswordRetrieval); err != nil {
		return nil, err
	}
	if cfg.EnablePasswordReset, err = pickBool(settings, "enablePasswordReset", constant.DefaultEnablePasswordReset); err != nil {
		return nil, err
	}
	if cfg.RequiresQuestionAndAnswer, err = pickBool(settings, "requiresQuestionAndAnswer", constant.DefaultRequiresQuestionAnswer); err != nil {
		return nil, err
	}
	if cfg.RequiresUniqueEmail, err = pickBool(settings, "requiresUniqueEmail", constant.DefaultRequiresUniqueEmail); err != nil {
		return nil, err
	}
	if cfg.MaxInvalidPasswordAttempts, err = pickInt(settings, "maxInvalidPasswordAttempts", constant.DefaultMaxInvalidPasswordTries); err != nil {
		return nil, err
	}
	if cfg.PasswordAttemptWindow, err = pickInt(settings, "passwordAttemptWindow", constant.DefaultPasswordAttemptWindowMin); err != nil {
		return nil, err
	}
	if cfg.MinRequiredPasswordLength, err = pickInt(settings, "minRequiredPasswordLength", constant.DefaultMinPasswordLength); err != nil {
		return nil, err
	}
	if cfg.MinRequiredNonAlphanumeric, err = pickInt(settings, "minRequiredNonAlphanumericCharacters", constant.DefaultMinNonAlphanumericChars); err != nil {
		return nil, err
	}
	if cfg.CommandTimeout, err = pickInt(settings, "commandTimeout", constant.DefaultCommandTimeoutSec); err != nil {
		return nil, err
	}

	if cfg.PasswordFormat, err = domain.ParsePasswordFormat(pick(settings, "passwordFormat", constant.DefaultPasswordFormat)); err != nil {
		return nil, err
	}

	if keyHex := settings["decryptionKey"]; keyHex != "" {
		if cfg.DecryptionKey, err = hex.DecodeString(keyHex); err != nil {
			return nil, fmt.Errorf("invalid decryptionKey: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate applies the startup-time rules: required values, range checks and
// the policy combinations that can never work at runtime.
func (c *Config) Validate() error {
	if c.DBURL == "" {
		return fmt.Errorf("connection string is required")
	}
	if len(c.ApplicationName) > constant.MaxApplicationNameLength {
		return fmt.Errorf("application name exceeds %d characters", constant.MaxApplicationNameLength)
	}
	if c.MinRequiredPasswordLength < 1 || c.MinRequiredPasswordLength > constant.MaxEncodedPasswordLength {
		return fmt.Errorf("minRequiredPasswordLength must be between 1 and %d", constant.MaxEncodedPasswordLength)
	}
	if c.MinRequiredNonAlphanumeric < 0 || c.MinRequiredNonAlphanumeric > c.MinRequiredPasswordLength {
		return fmt.Errorf("minRequiredNonAlphanumericCharacters must be between 0 and minRequiredPasswordLength")
	}
	if c.MaxInvalidPasswordAttempts < 1 {
		return fmt.Errorf("maxInvalidPasswordAttempts must be at least 1")
	}
	if c.PasswordAttemptWindow < 1 {
		return fmt.Errorf("passwordAttemptWindow must be at least 1 minute")
	}
	if c.CommandTimeout < 1 {
		return fmt.Errorf("commandTimeout must be at least 1 second")
	}
	if c.PasswordFormat == domain.PasswordFormatHashed && c.EnablePasswordRetrieval {
		return fmt.Errorf("password retrieval cannot be enabled with hashed passwords")
	}
	if c.PasswordFormat == domain.PasswordFormatEncrypted && len(c.DecryptionKey) == 0 {
		return fmt.Errorf("decryption key is required for encrypted passwords")
	}
	if c.HashAlgorithm != "SHA1" && c.HashAlgorithm != "SHA256" {
		return fmt.Errorf("hashAlgorithm must be SHA1 or SHA256")
	}
	if c.PasswordStrengthRegex != "" {
		re, err := regexp.Compile(c.PasswordStrengthRegex)
		if err != nil {
			return fmt.Errorf("invalid passwordStrengthRegularExpression: %w", err)
		}
		c.passwordRegex = re
	}
	return nil
}

func pick(settings map[string]string, key, defaultVal string) string {
	if v, ok := settings[key]; ok && v != "" {
		return v
	}
	return defaultVal
}

func pickBool(settings map[string]string, key string, defaultVal bool) (bool, error) {
	v, ok := settings[key]
	if !ok || v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return b, nil
}

func pickInt(settings map[string]string, key string, defaultVal int) (int, error) {
	v, ok := settings[key]
	if !ok || v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
