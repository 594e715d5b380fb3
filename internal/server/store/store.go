// Package store keeps the registry of enrolled users. The backing store is
// in-memory only; the Repository interface is the seam where a persistent
// implementation would plug in.
package store

import (
	"context"

	"github.com/dmitrijs2005/biovault/internal/models"
)

// Repository is the contract the authentication engine depends on.
//
// Save and Update are atomic: two concurrent Save calls with the same
// identifier never both succeed, and Update replaces the stored value in
// one step. Both return false instead of an error on a failed precondition,
// with no partial effect.
type Repository interface {
	// FindByID returns the user with the identifier, or ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByTemplate identifies the enrolled user whose stored template of
	// the same modality scores at or above the modality threshold against
	// the given plaintext template. Returns ErrorNotFound when nobody
	// matches. Linear in the number of enrolled users.
	FindByTemplate(ctx context.Context, template []byte, modality models.Modality) (*models.User, error)

	// Save inserts a new user. It fails when the identifier exists or when
	// an active user already holds a content-equal template of the same
	// modality.
	Save(ctx context.Context, user *models.User) bool

	// Update atomically replaces an existing user record. It fails when
	// the identifier is unknown.
	Update(ctx context.Context, user *models.User) bool
}
