package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// saltLength is the random salt size in bytes.
const saltLength = 16

var (
	// ErrInvalidHash is returned when a stored hash cannot be parsed as a
	// PHC-encoded argon2id string.
	ErrInvalidHash = errors.New("password: invalid hash encoding")
	// ErrUnsupportedAlgorithm is returned when the stored hash uses an
	// algorithm other than argon2id.
	ErrUnsupportedAlgorithm = errors.New("password: unsupported hash algorithm")
	// ErrIncompatibleVersion is returned when the stored hash was produced
	// by an incompatible argon2 version.
	ErrIncompatibleVersion = errors.New("password: incompatible argon2 version")
)

// Params controls the argon2id cost surface. The zero value is not usable;
// start from DefaultParams.
type Params struct {
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Iterations is the time cost.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
	// KeyLength is the derived key size in bytes.
	KeyLength uint32
}

// DefaultParams returns the recommended argon2id cost parameters.
func DefaultParams() Params {
	return Params{
		MemoryKiB:   19456,
		Iterations:  2,
		Parallelism: 1,
		KeyLength:   32,
	}
}

// Hash derives an argon2id hash of plaintext with a fresh random salt and
// returns it PHC-encoded.
func Hash(plaintext string, p Params) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.MemoryKiB, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.MemoryKiB,
		p.Iterations,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches the PHC-encoded hash.
// A mismatch is (false, nil); errors are reserved for hashes this package
// cannot interpret.
func Verify(encodedHash, plaintext string) (bool, error) {
	p, salt, key, err := decode(encodedHash)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.MemoryKiB, p.Parallelism, p.KeyLength)

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

// decode parses a PHC-encoded argon2id hash into its parameters, salt and key.
func decode(encodedHash string) (Params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrUnsupportedAlgorithm
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, errors.Join(ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Params{}, nil, nil, ErrIncompatibleVersion
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return Params{}, nil, nil, errors.Join(ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, errors.Join(ErrInvalidHash, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, errors.Join(ErrInvalidHash, err)
	}
	if len(key) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	p := Params{
		MemoryKiB:   memory,
		Iterations:  iterations,
		Parallelism: parallelism,
		KeyLength:   uint32(len(key)),
	}
	return p, salt, key, nil
}
