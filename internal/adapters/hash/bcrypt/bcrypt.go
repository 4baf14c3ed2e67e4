package bcrypt

import (
	crypt "golang.org/x/crypto/bcrypt"
)

// Cost 10: subirlo solo encarece login y registro.
const DefaultCost = 10

// Hasher implementa ports/hash.PasswordHasher con bcrypt.
type Hasher struct {
	cost int
}

func New() *Hasher {
	return &Hasher{cost: DefaultCost}
}

func NewWithCost(cost int) *Hasher {
	if cost < crypt.MinCost || cost > crypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	b, err := crypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Verify(password, hashed string) bool {
	return crypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
