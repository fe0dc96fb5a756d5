package icontact

import (
	"crypto/md5"
	"encoding/hex"
)

// Credentials is a token/sequence pair issued outside this SDK. The SDK
// never issues credentials itself; it only offers the storage extension
// point so multiple clients can share them.
type Credentials struct {
	Token    string
	Sequence int
}

// CredentialStore shares credentials across client instances. A store is
// injected with WithCredentialStore; the client reads it once at
// construction and writes back through StoreCredentials.
type CredentialStore interface {
	// Credentials retrieves the currently stored credentials.
	Credentials() (Credentials, error)
	// SetCredentials persists newly issued credentials.
	SetCredentials(Credentials) error
}

// NoopCredentialStore is the default CredentialStore. It stores nothing
// and always returns zero credentials.
type NoopCredentialStore struct{}

// Credentials implements CredentialStore.
func (NoopCredentialStore) Credentials() (Credentials, error) {
	return Credentials{}, nil
}

// SetCredentials implements CredentialStore.
func (NoopCredentialStore) SetCredentials(Credentials) error {
	return nil
}

// MD5Password returns the hex MD5 digest of an application password.
// iContact's legacy auth registered the digest, not the password itself.
func MD5Password(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
