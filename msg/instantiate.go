package msg

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/baron-chain/cw20-bc/cw20"
)

const (
	MinNameLength   = 3
	MaxNameLength   = 50
	MinSymbolLength = 3
	MaxSymbolLength = 12
	MaxDecimals     = 18
)

// InstantiateMarketingInfo is the optional display metadata set at creation.
type InstantiateMarketingInfo struct {
	Project     *string    `json:"project,omitempty"`
	Description *string    `json:"description,omitempty"`
	Marketing   *string    `json:"marketing,omitempty"`
	Logo        *cw20.Logo `json:"logo,omitempty"`
}

// InstantiateMsg creates a new token.
type InstantiateMsg struct {
	Name            string                    `json:"name"`
	Symbol          string                    `json:"symbol"`
	Decimals        uint8                     `json:"decimals"`
	InitialBalances []cw20.Cw20Coin           `json:"initial_balances"`
	Mint            *cw20.MinterResponse      `json:"mint,omitempty"`
	Marketing       *InstantiateMarketingInfo `json:"marketing,omitempty"`
}

// UnmarshalJSON requires name, symbol, decimals and initial_balances.
func (m *InstantiateMsg) UnmarshalJSON(bz []byte) error {
	type instantiateMsg InstantiateMsg
	return cw20.UnmarshalStrict(bz, (*instantiateMsg)(m))
}

func (m *InstantiateMarketingInfo) UnmarshalJSON(bz []byte) error {
	type marketingInfo InstantiateMarketingInfo
	return cw20.UnmarshalStrict(bz, (*marketingInfo)(m))
}

// Cap returns the hard cap on total supply, or nil when the token has no
// minter or the minter is uncapped.
func (m InstantiateMsg) Cap() *cw20.Uint128 {
	if m.Mint == nil {
		return nil
	}
	return m.Mint.Cap
}

// Validate checks name, symbol and decimals, in that order, and returns
// the first violation.
func (m InstantiateMsg) Validate() error {
	if !m.hasValidName() {
		return ErrInvalidName
	}
	if !m.hasValidSymbol() {
		return ErrInvalidSymbol
	}
	if m.Decimals > MaxDecimals {
		return ErrInvalidDecimals
	}
	return nil
}

// InitialSupply sums the initial balances.
func (m InstantiateMsg) InitialSupply() (cw20.Uint128, error) {
	total := cw20.ZeroUint128()
	for _, coin := range m.InitialBalances {
		sum, err := total.CheckedAdd(coin.Amount)
		if err != nil {
			return cw20.Uint128{}, err
		}
		total = sum
	}
	return total, nil
}

// CheckSupply fails when the initial supply overflows or exceeds the cap.
// It is separate from Validate, which only looks at the token metadata.
func (m InstantiateMsg) CheckSupply() error {
	supply, err := m.InitialSupply()
	if err != nil {
		return err
	}
	if limit := m.Cap(); limit != nil && supply.GT(*limit) {
		return errorsmod.Wrapf(ErrCapExceeded, "supply %s, cap %s", supply, limit)
	}
	return nil
}

func (m InstantiateMsg) hasValidName() bool {
	return len(m.Name) >= MinNameLength && len(m.Name) <= MaxNameLength
}

// hasValidSymbol works on bytes, so any non-ASCII input is rejected
// without decoding it.
func (m InstantiateMsg) hasValidSymbol() bool {
	if len(m.Symbol) < MinSymbolLength || len(m.Symbol) > MaxSymbolLength {
		return false
	}
	for i := 0; i < len(m.Symbol); i++ {
		if !isSymbolByte(m.Symbol[i]) {
			return false
		}
	}
	return true
}

func isSymbolByte(b byte) bool {
	return b == '-' ||
		('0' <= b && b <= '9') ||
		('A' <= b && b <= 'Z') ||
		('a' <= b && b <= 'z')
}

// MigrateMsg carries no data.
type MigrateMsg struct{}
