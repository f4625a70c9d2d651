package service

//go:generate mockgen -destination=../../mocks/mock_password_generator.go -package=mocks github.com/AnthoniusHendriyanto/membership-service/internal/membership/service PasswordGenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/AnthoniusHendriyanto/membership-service/pkg/constant"
)

// PasswordGenerator mints random passwords for ResetPassword.
type PasswordGenerator interface {
	Generate(length, minNonAlphanumeric int) (string, error)
}

const (
	alphanumericChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nonAlphanumericChars = "!@#$%^&*()-_=+[]{}"
)

// RandomPasswordGenerator draws characters from a crypto-random source.
type RandomPasswordGenerator struct{}

// NewRandomPasswordGenerator returns the default generator.
func NewRandomPasswordGenerator() *RandomPasswordGenerator {
	return &RandomPasswordGenerator{}
}

// Generate produces a password of the given length containing at least
// minNonAlphanumeric symbol characters at random positions.
func (g *RandomPasswordGenerator) Generate(length, minNonAlphanumeric int) (string, error) {
	if length < 1 {
		length = constant.GeneratedPasswordLength
	}
	if minNonAlphanumeric > length {
		minNonAlphanumeric = length
	}

	out := make([]byte, length)
	for i := range out {
		c, err := randomChar(alphanumericChars)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	// Overwrite distinct random positions with symbols.
	positions, err := randomPositions(length, minNonAlphanumeric)
	if err != nil {
		return "", err
	}
	for _, pos := range positions {
		c, err := randomChar(nonAlphanumericChars)
		if err != nil {
			return "", err
		}
		out[pos] = c
	}

	return string(out), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random character: %w", err)
	}
	return set[n.Int64()], nil
}

func randomPositions(length, count int) ([]int, error) {
	chosen := make(map[int]bool, count)
	positions := make([]int, 0, count)
	for len(positions) < count {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(length)))
		if err != nil {
			return nil, fmt.Errorf("failed to draw random position: %w", err)
		}
		pos := int(n.Int64())
		if chosen[pos] {
			continue
		}
		chosen[pos] = true
		positions = append(positions, pos)
	}
	return positions, nil
}
