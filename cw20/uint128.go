package cw20

import (
	"encoding/json"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// MaxUint128 is 2^128 - 1, the largest amount a token can express.
var MaxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Uint128 is an unsigned 128-bit amount. It is encoded on the wire as a
// decimal string so JSON number precision never gets in the way.
// The zero value is 0.
type Uint128 struct {
	i sdkmath.Uint
}

// NewUint128 returns the amount n.
func NewUint128(n uint64) Uint128 {
	return Uint128{i: sdkmath.NewUint(n)}
}

// ZeroUint128 returns an amount of 0.
func ZeroUint128() Uint128 {
	return Uint128{i: sdkmath.ZeroUint()}
}

// ParseUint128 parses a base-10 amount. Signs, prefixes, separators and
// values above MaxUint128 are rejected.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, errorsmod.Wrap(ErrInvalidUint128, "empty string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint128{}, errorsmod.Wrapf(ErrInvalidUint128, "%q is not a decimal number", s)
		}
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidUint128, "%q is not a decimal number", s)
	}
	if i.Cmp(MaxUint128) > 0 {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidUint128, "%s overflows 128 bits", s)
	}
	return Uint128{i: sdkmath.NewUintFromBigInt(i)}, nil
}

// MustParseUint128 is like ParseUint128 but panics on error.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Uint returns the amount as a cosmossdk.io/math Uint.
func (u Uint128) Uint() sdkmath.Uint {
	if u.i == (sdkmath.Uint{}) {
		return sdkmath.ZeroUint()
	}
	return u.i
}

// BigInt returns a copy of the amount as a big.Int.
func (u Uint128) BigInt() *big.Int {
	return u.Uint().BigInt()
}

func (u Uint128) IsZero() bool {
	return u.Uint().IsZero()
}

func (u Uint128) Equal(o Uint128) bool {
	return u.Uint().Equal(o.Uint())
}

func (u Uint128) String() string {
	return u.Uint().String()
}

// MarshalJSON encodes the amount as a decimal string.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts only a JSON string holding a decimal amount.
func (u *Uint128) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return errorsmod.Wrapf(ErrInvalidUint128, "expected a decimal string, got %s", bz)
	}
	parsed, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// CheckedAdd returns u + o, or an error when the sum overflows 128 bits.
func (u Uint128) CheckedAdd(o Uint128) (Uint128, error) {
	sum := new(big.Int).Add(u.BigInt(), o.BigInt())
	if sum.Cmp(MaxUint128) > 0 {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidUint128, "%s + %s overflows 128 bits", u, o)
	}
	return Uint128{i: sdkmath.NewUintFromBigInt(sum)}, nil
}

func (u Uint128) GT(o Uint128) bool {
	return u.Uint().GT(o.Uint())
}
