package codec_test

import (
	"encoding/base64"
	"testing"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/codec"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef") // 32 bytes, AES-256

func newTestCodec(t *testing.T) *codec.Codec {
	t.Helper()
	c, err := codec.New("SHA1", testKey)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadInputs(t *testing.T) {
	_, err := codec.New("MD5", nil)
	assert.Error(t, err)

	_, err = codec.New("SHA1", []byte("short-key"))
	assert.Error(t, err)

	_, err = codec.New("SHA256", nil)
	assert.NoError(t, err)
}

func TestGenerateSalt(t *testing.T) {
	c := newTestCodec(t)

	salt, err := c.GenerateSalt()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	// Salts are never reused across calls.
	other, err := c.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestEncodePassword_Clear(t *testing.T) {
	c := newTestCodec(t)

	encoded, err := c.EncodePassword("Abcdef1!", domain.PasswordFormatClear, "")
	require.NoError(t, err)
	assert.Equal(t, "Abcdef1!", encoded)

	decoded, err := c.UnencodePassword(encoded, domain.PasswordFormatClear)
	require.NoError(t, err)
	assert.Equal(t, "Abcdef1!", decoded)
}

func TestEncodePassword_EncryptedRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	salt, err := c.GenerateSalt()
	require.NoError(t, err)

	passwords := []string{"Abcdef1!", "pässwörd", "日本語パスワード", "x", "a long password with spaces and $ymbols 123"}
	for _, p := range passwords {
		encoded, err := c.EncodePassword(p, domain.PasswordFormatEncrypted, salt)
		require.NoError(t, err, "password %q", p)
		assert.NotEqual(t, p, encoded)

		decoded, err := c.UnencodePassword(encoded, domain.PasswordFormatEncrypted)
		require.NoError(t, err, "password %q", p)
		assert.Equal(t, p, decoded)
	}
}

func TestEncodePassword_HashedIsOneWay(t *testing.T) {
	c := newTestCodec(t)
	salt, err := c.GenerateSalt()
	require.NoError(t, err)

	encoded, err := c.EncodePassword("Abcdef1!", domain.PasswordFormatHashed, salt)
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef1!", encoded)

	_, err = c.UnencodePassword(encoded, domain.PasswordFormatHashed)
	assert.ErrorIs(t, err, autherror.ErrCannotDecodeHashed)

	// Decoding refuses regardless of input, not just valid hashes.
	_, err = c.UnencodePassword("anything at all", domain.PasswordFormatHashed)
	assert.ErrorIs(t, err, autherror.ErrCannotDecodeHashed)
}

func TestEncodePassword_Deterministic(t *testing.T) {
	c := newTestCodec(t)
	salt, err := c.GenerateSalt()
	require.NoError(t, err)

	for _, format := range []domain.PasswordFormat{domain.PasswordFormatHashed, domain.PasswordFormatEncrypted} {
		a, err := c.EncodePassword("Abcdef1!", format, salt)
		require.NoError(t, err)
		b, err := c.EncodePassword("Abcdef1!", format, salt)
		require.NoError(t, err)
		assert.Equal(t, a, b, "format %v", format)
	}
}

func TestEncodePassword_DistinctSaltsDistinctOutputs(t *testing.T) {
	c := newTestCodec(t)

	const n = 50
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		salt, err := c.GenerateSalt()
		require.NoError(t, err)
		encoded, err := c.EncodePassword("Abcdef1!", domain.PasswordFormatHashed, salt)
		require.NoError(t, err)
		assert.False(t, seen[encoded], "hash collision across salts")
		seen[encoded] = true
	}
}

func TestEncodePassword_SHA256(t *testing.T) {
	c256, err := codec.New("SHA256", nil)
	require.NoError(t, err)
	c1, err := codec.New("SHA1", nil)
	require.NoError(t, err)

	salt := base64.StdEncoding.EncodeToString(make([]byte, 16))
	a, err := c256.EncodePassword("Abcdef1!", domain.PasswordFormatHashed, salt)
	require.NoError(t, err)
	b, err := c1.EncodePassword("Abcdef1!", domain.PasswordFormatHashed, salt)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	// SHA-256 digests are 32 bytes.
	raw, err := base64.StdEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestEncodePassword_InvalidSalt(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.EncodePassword("Abcdef1!", domain.PasswordFormatHashed, "not base64 !!!")
	assert.Error(t, err)
}

func TestUnencodePassword_GarbageCiphertext(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.UnencodePassword("definitely-not-base64 !!!", domain.PasswordFormatEncrypted)
	assert.Error(t, err)

	// Valid base64, wrong length for AES blocks.
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	_, err = c.UnencodePassword(short, domain.PasswordFormatEncrypted)
	assert.Error(t, err)
}

func TestEncrypted_RequiresKey(t *testing.T) {
	c, err := codec.New("SHA1", nil)
	require.NoError(t, err)

	salt, err := c.GenerateSalt()
	require.NoError(t, err)

	_, err = c.EncodePassword("Abcdef1!", domain.PasswordFormatEncrypted, salt)
	assert.Error(t, err)
}
