package cw20

import (
	"encoding/json"
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
)

// Timestamp is a point in time in nanoseconds since the unix epoch.
// It is encoded on the wire as a decimal string.
type Timestamp uint64

// TimestampFromSeconds converts whole seconds to a Timestamp.
func TimestampFromSeconds(seconds uint64) Timestamp {
	return Timestamp(seconds * 1_000_000_000)
}

func (t Timestamp) Nanos() uint64 {
	return uint64(t)
}

func (t Timestamp) Seconds() uint64 {
	return uint64(t) / 1_000_000_000
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(t), 10))
}

func (t *Timestamp) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return errorsmod.Wrapf(ErrInvalidTimestamp, "expected a decimal string, got %s", bz)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errorsmod.Wrap(ErrInvalidTimestamp, err.Error())
	}
	*t = Timestamp(n)
	return nil
}

// Never marks an expiration that never fires. It is encoded as {}.
type Never struct{}

// Expiration describes when an allowance stops being usable. Exactly one
// of the fields is set.
type Expiration struct {
	AtHeight *uint64    `json:"at_height,omitempty"`
	AtTime   *Timestamp `json:"at_time,omitempty"`
	Never    *Never     `json:"never,omitempty"`
}

func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

func ExpiresAtTime(t Timestamp) Expiration {
	return Expiration{AtTime: &t}
}

func NeverExpires() Expiration {
	return Expiration{Never: &Never{}}
}

// ValidateBasic checks that exactly one variant is set.
func (e Expiration) ValidateBasic() error {
	n := 0
	if e.AtHeight != nil {
		n++
	}
	if e.AtTime != nil {
		n++
	}
	if e.Never != nil {
		n++
	}
	if n != 1 {
		return errorsmod.Wrapf(ErrInvalidExpiration, "expected exactly one of at_height, at_time, never; got %d", n)
	}
	return nil
}

// IsExpired reports whether the expiration has passed at the given block.
func (e Expiration) IsExpired(height uint64, now Timestamp) bool {
	switch {
	case e.AtHeight != nil:
		return height >= *e.AtHeight
	case e.AtTime != nil:
		return now >= *e.AtTime
	default:
		return false
	}
}

func (e Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return fmt.Sprintf("expiration height: %d", *e.AtHeight)
	case e.AtTime != nil:
		return fmt.Sprintf("expiration time: %d", *e.AtTime)
	case e.Never != nil:
		return "expiration: never"
	default:
		return "expiration: unset"
	}
}

// UnmarshalJSON requires an object with exactly one known variant key.
func (e *Expiration) UnmarshalJSON(bz []byte) error {
	if err := checkUnionKeys(bz, ErrInvalidExpiration, "at_height", "at_time", "never"); err != nil {
		return err
	}
	type expiration Expiration
	var v expiration
	if err := json.Unmarshal(bz, &v); err != nil {
		return err
	}
	if err := Expiration(v).ValidateBasic(); err != nil {
		return err
	}
	*e = Expiration(v)
	return nil
}
