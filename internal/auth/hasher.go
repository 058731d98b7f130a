package auth

import "golang.org/x/crypto/bcrypt"

// CredentialHasher isolates credential verification so the storage scheme
// can change without touching any caller.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type bcryptHasher struct{}

func NewBcryptHasher() CredentialHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
