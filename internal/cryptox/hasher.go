// Package cryptox implements the one-way hashing used for stored secrets:
// a slow salted hash (bcrypt) for passwords and OTP codes, and a fast
// SHA-256 digest for opaque high-entropy tokens that only need lookup.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor used for stored passwords.
const DefaultCost = 10

// bcrypt silently ignores input past 72 bytes; longer secrets are rejected
// instead so two distinct passwords can never share a digest.
const maxSecretBytes = 72

var ErrSecretTooLong = errors.New("secret exceeds 72 bytes")

// Hasher hashes and verifies low-entropy secrets with bcrypt. The cost is
// recorded inside every digest, so changing Cost never breaks verification
// of digests produced earlier.
type Hasher struct {
	Cost int
}

// NewHasher returns a Hasher with the given cost, clamped to bcrypt's range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{Cost: cost}
}

// HashSecret returns the bcrypt digest of secret.
func (h *Hasher) HashSecret(secret string) (string, error) {
	if len(secret) > maxSecretBytes {
		return "", ErrSecretTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether secret matches digest. Malformed digests
// simply fail verification.
func (h *Hasher) VerifySecret(secret, digest string) bool {
	if digest == "" || len(secret) > maxSecretBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// DigestToken returns the hex SHA-256 of token. It is used for refresh and
// reset tokens, which carry enough entropy that brute force is not a concern.
func DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// GenerateOTP returns a uniformly distributed decimal code of the given length.
func GenerateOTP(digits int) (string, error) {
	if digits <= 0 {
		return "", errors.New("otp length must be positive")
	}
	buf := make([]byte, digits)
	ten := big.NewInt(10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}

// GenerateOpaqueToken returns size random bytes encoded as hex.
func GenerateOpaqueToken(size int) (string, error) {
	return common.MakeRandHexString(size)
}
