package core

// CodeGenerator mints opaque identifiers and redemption codes.
// Codes must be globally unique: redemption looks a code up across the whole
// owned-coupon population without knowing the owner in advance.
type CodeGenerator interface {
	// NewID returns a new opaque entity identifier
	NewID() string
	// NewCode returns a new globally unique redemption code
	NewCode() string
}
