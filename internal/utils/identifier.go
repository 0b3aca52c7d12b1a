package utils

import "github.com/google/uuid"

// IDGenerator returns a fresh, unique entity id on every call.
type IDGenerator func() string

// NewID generates a random UUID string.
func NewID() string {
	return uuid.NewString()
}
