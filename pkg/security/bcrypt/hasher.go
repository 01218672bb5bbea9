// Package bcrypt implements auth.PasswordHasher on top of golang.org/x/crypto/bcrypt.
package bcrypt

import "golang.org/x/crypto/bcrypt"

// Hasher hashes passwords with a configurable work factor. The produced
// record embeds algorithm version, cost and salt, so old hashes keep
// verifying after the cost is raised.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted hash record. The salt is random per call, so
// hashing the same password twice yields different records.
func (h *Hasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify compares in constant time using the parameters embedded in the
// record. Malformed records verify as false rather than erroring.
func (h *Hasher) Verify(password, record string) bool {
	return bcrypt.CompareHashAndPassword([]byte(record), []byte(password)) == nil
}
