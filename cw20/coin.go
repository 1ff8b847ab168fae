package cw20

// Cw20Coin is an amount of this token held by an address.
type Cw20Coin struct {
	Address string  `json:"address"`
	Amount  Uint128 `json:"amount"`
}

func (c *Cw20Coin) UnmarshalJSON(bz []byte) error {
	type cw20Coin Cw20Coin
	return UnmarshalStrict(bz, (*cw20Coin)(c))
}

// MinterResponse names the minting authority and the optional hard cap on
// total supply. It doubles as the mint section of the instantiate message.
type MinterResponse struct {
	Minter string   `json:"minter"`
	Cap    *Uint128 `json:"cap,omitempty"`
}

func (m *MinterResponse) UnmarshalJSON(bz []byte) error {
	type minterResponse MinterResponse
	return UnmarshalStrict(bz, (*minterResponse)(m))
}
