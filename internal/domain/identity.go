package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidIdentity     = errors.New("identity must have exactly one of userID or anonID")
	ErrExperimentNotFound  = errors.New("experiment not found")
	ErrExperimentNotActive = errors.New("experiment is not active")
	ErrNoVariants          = errors.New("experiment has no variants with positive weight")
)

// Identity is the assignment key for a visitor - either a logged-in
// user account or an anonymous browser id minted by the frontend.
type Identity struct {
	UserID *uuid.UUID
	AnonID *string
}

func NewUserIdentity(userID uuid.UUID) Identity {
	return Identity{UserID: &userID}
}

func NewAnonIdentity(anonID string) Identity {
	return Identity{AnonID: &anonID}
}

func (i Identity) Validate() error {
	if i.UserID != nil && i.AnonID != nil {
		return ErrInvalidIdentity
	}
	if i.UserID == nil && (i.AnonID == nil || *i.AnonID == "") {
		return ErrInvalidIdentity
	}
	return nil
}
