package utils

import "github.com/google/uuid"

// IDGenerator produces locally unique, time-ordered record ids. UUIDv7 keeps
// the time-based prefix + random suffix shape that the load table relies on
// for stable creation ordering.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a fresh record id. Falls back to a random UUIDv4 in the
// unlikely case the v7 source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return "local_" + uuid.NewString()
	}

	return "local_" + v7.String()
}
