package cw20

// Response shapes for the standard cw20 queries.

type BalanceResponse struct {
	Balance Uint128 `json:"balance"`
}

type TokenInfoResponse struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Decimals    uint8   `json:"decimals"`
	TotalSupply Uint128 `json:"total_supply"`
}

type AllowanceResponse struct {
	Allowance Uint128    `json:"allowance"`
	Expires   Expiration `json:"expires"`
}

// AllowanceInfo is one allowance granted by an owner, keyed by spender.
type AllowanceInfo struct {
	Spender   string     `json:"spender"`
	Allowance Uint128    `json:"allowance"`
	Expires   Expiration `json:"expires"`
}

type AllAllowancesResponse struct {
	Allowances []AllowanceInfo `json:"allowances"`
}

// SpenderAllowanceInfo is one allowance granted to a spender, keyed by owner.
type SpenderAllowanceInfo struct {
	Owner     string     `json:"owner"`
	Allowance Uint128    `json:"allowance"`
	Expires   Expiration `json:"expires"`
}

type AllSpenderAllowancesResponse struct {
	Allowances []SpenderAllowanceInfo `json:"allowances"`
}

type AllAccountsResponse struct {
	Accounts []string `json:"accounts"`
}

// MarketingInfoResponse carries display metadata. Unset fields are omitted.
type MarketingInfoResponse struct {
	Project     *string   `json:"project,omitempty"`
	Description *string   `json:"description,omitempty"`
	Logo        *LogoInfo `json:"logo,omitempty"`
	Marketing   *string   `json:"marketing,omitempty"`
}

// DownloadLogoResponse is the embedded logo with its content type.
type DownloadLogoResponse struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
