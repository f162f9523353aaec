package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered record identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 UUID
// if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a canonical UUID string.
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}

	return uuid.Validate(id) == nil
}
