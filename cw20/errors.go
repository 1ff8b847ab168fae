package cw20

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error namespace shared by the cw20 interface types.
const Codespace = "cw20"

var (
	// ErrInvalidUint128 is returned when an amount is not a decimal string within the 128-bit range.
	ErrInvalidUint128 = errorsmod.Register(Codespace, 2, "invalid Uint128")
	// ErrInvalidTimestamp is returned when a timestamp is not a decimal string of nanoseconds.
	ErrInvalidTimestamp = errorsmod.Register(Codespace, 3, "invalid timestamp")
	// ErrInvalidExpiration is returned when an expiration does not carry exactly one variant.
	ErrInvalidExpiration = errorsmod.Register(Codespace, 4, "invalid expiration")
	// ErrInvalidLogo is returned when a logo does not carry exactly one variant.
	ErrInvalidLogo = errorsmod.Register(Codespace, 5, "invalid logo")
	ErrLogoTooBig  = errorsmod.Register(Codespace, 6, "Logo binary data exceeds 5KB limit")
	// ErrInvalidXmlPreamble is returned when an embedded SVG does not start with an xml declaration.
	ErrInvalidXmlPreamble = errorsmod.Register(Codespace, 7, "Invalid xml preamble for SVG")
	ErrInvalidPngHeader   = errorsmod.Register(Codespace, 8, "Invalid png header")
	// ErrMissingField is returned when a required message field is absent or null.
	ErrMissingField = errorsmod.Register(Codespace, 9, "missing field")
	// ErrUnknownField is returned when a key differs from a field name only by case.
	ErrUnknownField = errorsmod.Register(Codespace, 10, "unknown field")
)
