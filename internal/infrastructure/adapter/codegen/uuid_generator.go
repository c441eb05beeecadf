package codegen

import (
	"strings"

	"github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator implements CodeGenerator with random UUIDs.
// Redemption codes lean on the same 122 bits of randomness that make UUID
// collisions negligible; the unique index on the column backstops them.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-based code generator
func NewUUIDGenerator() core.CodeGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new opaque entity identifier
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewCode returns a new redemption code. Uppercase without hyphens so it
// stays readable when a resident shows it to a validator.
func (g *UUIDGenerator) NewCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
