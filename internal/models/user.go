package models

// User is an enrolled identity. The stored template is always encrypted;
// the plaintext only exists transiently inside the store and the engine.
//
// User values are treated as immutable: revocation replaces the record in
// the store with a copy whose Active flag is false, it never mutates a
// value other goroutines may hold.
type User struct {
	ID                string
	Name              string
	Role              string
	MaxAccessLevel    AccessLevel
	EncryptedTemplate []byte
	Modality          Modality
	Active            bool
}

// Deactivated returns a copy of u with the Active flag cleared.
func (u *User) Deactivated() *User {
	c := *u
	c.Active = false
	return &c
}
