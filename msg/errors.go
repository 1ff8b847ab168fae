package msg

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error namespace of the cw20-base messages.
const Codespace = "cw20-base"

var (
	ErrInvalidName     = errorsmod.Register(Codespace, 2, "Name is not in the expected format (3-50 UTF-8 bytes)")
	ErrInvalidSymbol   = errorsmod.Register(Codespace, 3, "Ticker symbol is not in expected format [a-zA-Z0-9\\-]{3,12}")
	ErrInvalidDecimals = errorsmod.Register(Codespace, 4, "Decimals must not exceed 18")

	// ErrEmptyMsg is returned when a tagged message carries no variant.
	ErrEmptyMsg = errorsmod.Register(Codespace, 5, "message has no variant")
	// ErrMultipleVariants is returned when a tagged message carries more than one variant.
	ErrMultipleVariants = errorsmod.Register(Codespace, 6, "message has more than one variant")
	ErrUnknownVariant   = errorsmod.Register(Codespace, 7, "unknown message variant")

	// ErrCapExceeded is returned when the initial balances add up to more than the hard cap.
	ErrCapExceeded = errorsmod.Register(Codespace, 8, "Initial supply greater than cap")
)
