// Package codec encodes and decodes stored passwords across the three
// supported storage formats: Clear, Encrypted (reversible) and Hashed
// (one-way).
package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"unicode/utf16"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
)

// Codec is a stateless credential encoder. The AES key is only required when
// the Encrypted format is in use; the hash constructor only for Hashed.
type Codec struct {
	newHash func() hash.Hash
	key     []byte
}

// New builds a Codec for the given hash algorithm name (SHA1 or SHA256) and
// optional AES key for the Encrypted format.
func New(hashAlgorithm string, key []byte) (*Codec, error) {
	c := &Codec{key: key}
	switch hashAlgorithm {
	case "SHA1":
		c.newHash = sha1.New
	case "SHA256":
		c.newHash = sha256.New
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", hashAlgorithm)
	}
	if key != nil {
		if _, err := aes.NewCipher(key); err != nil {
			return nil, fmt.Errorf("invalid decryption key: %w", err)
		}
	}
	return c, nil
}

// GenerateSalt produces 16 cryptographically random bytes as base64 text.
// A fresh salt is drawn on every call.
func (c *Codec) GenerateSalt() (string, error) {
	buf := make([]byte, constant.SaltSizeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// EncodePassword encodes plaintext under the given format and base64 salt.
// Clear returns the plaintext unchanged. Encrypted and Hashed concatenate the
// raw salt bytes with the UTF-16LE plaintext bytes and then encrypt or digest
// the concatenation, returning base64 text. Pure function of its inputs.
func (c *Codec) EncodePassword(plaintext string, format domain.PasswordFormat, salt string) (string, error) {
	if format == domain.PasswordFormatClear {
		return plaintext, nil
	}

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("invalid salt: %w", err)
	}
	all := append(append([]byte{}, saltBytes...), utf16leBytes(plaintext)...)

	switch format {
	case domain.PasswordFormatHashed:
		h := c.newHash()
		h.Write(all)
		return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
	case domain.PasswordFormatEncrypted:
		if len(saltBytes) < aes.BlockSize {
			return "", fmt.Errorf("salt too short for encrypted format: %d bytes", len(saltBytes))
		}
		enc, err := c.encrypt(all, saltBytes)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(enc), nil
	default:
		return "", fmt.Errorf("unknown password format %v", format)
	}
}

// UnencodePassword reverses EncodePassword where the format allows. Hashed
// passwords always fail: hashes are not reversible.
func (c *Codec) UnencodePassword(encoded string, format domain.PasswordFormat) (string, error) {
	switch format {
	case domain.PasswordFormatClear:
		return encoded, nil
	case domain.PasswordFormatHashed:
		return "", autherror.ErrCannotDecodeHashed
	case domain.PasswordFormatEncrypted:
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", fmt.Errorf("invalid encoded password: %w", err)
		}
		dec, err := c.decrypt(raw)
		if err != nil {
			return "", err
		}
		if len(dec) < constant.SaltSizeBytes {
			return "", fmt.Errorf("decrypted password shorter than salt")
		}
		return utf16leString(dec[constant.SaltSizeBytes:])
	default:
		return "", fmt.Errorf("unknown password format %v", format)
	}
}

// encrypt applies AES-CBC with PKCS#7 padding. The IV is the 16 salt bytes,
// which keeps encoding deterministic per (password, salt) while staying
// unique per user.
func (c *Codec) encrypt(plain, iv []byte) ([]byte, error) {
	if c.key == nil {
		return nil, fmt.Errorf("no decryption key configured for encrypted passwords")
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plain, aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv[:aes.BlockSize])
	cipher.NewCBCEncrypter(block, iv[:aes.BlockSize]).CryptBlocks(out[aes.BlockSize:], padded)
	return out, nil
}

func (c *Codec) decrypt(raw []byte) ([]byte, error) {
	if c.key == nil {
		return nil, fmt.Errorf("no decryption key configured for encrypted passwords")
	}
	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("encrypted password has invalid length %d", len(raw))
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	iv, body := raw[:aes.BlockSize], raw[aes.BlockSize:]
	out := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, body)
	return pkcs7Unpad(out, aes.BlockSize)
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(b))
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}

// utf16leBytes encodes s as UTF-16 little-endian, the byte layout existing
// password records use.
func utf16leBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		out[2*i] = byte(u)
		out[2*i+1] = byte(u >> 8)
	}
	return out
}

func utf16leString(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("utf-16 payload has odd length %d", len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return string(utf16.Decode(units)), nil
}
