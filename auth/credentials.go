package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier isolates how a claimed password is checked
// against the stored credential so the comparison strategy can change
// without touching the login handlers.
type CredentialVerifier interface {
	Hash(plain string) (string, error)
	Verify(stored, claimed string) bool
}

type BcryptVerifier struct{}

func (BcryptVerifier) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, claimed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(claimed)) == nil
}
