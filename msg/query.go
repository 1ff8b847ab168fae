package msg

import (
	"github.com/baron-chain/cw20-bc/cw20"
)

const (
	TagBalance              = "balance"
	TagTokenInfo            = "token_info"
	TagMinter               = "minter"
	TagAllowance            = "allowance"
	TagAllAllowances        = "all_allowances"
	TagAllSpenderAllowances = "all_spender_allowances"
	TagAllAccounts          = "all_accounts"
	TagMarketingInfo        = "marketing_info"
	TagDownloadLogo         = "download_logo"
	TagMinters              = "minters"
)

// QueryTags lists every query variant in declaration order.
var QueryTags = []string{
	TagBalance,
	TagTokenInfo,
	TagMinter,
	TagAllowance,
	TagAllAllowances,
	TagAllSpenderAllowances,
	TagAllAccounts,
	TagMarketingInfo,
	TagDownloadLogo,
	TagMinters,
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 30
)

// QueryMsg is a read-only request. Exactly one field is set.
type QueryMsg struct {
	Balance              *BalanceQuery              `json:"balance,omitempty"`
	TokenInfo            *TokenInfoQuery            `json:"token_info,omitempty"`
	Minter               *MinterQuery               `json:"minter,omitempty"`
	Allowance            *AllowanceQuery            `json:"allowance,omitempty"`
	AllAllowances        *AllAllowancesQuery        `json:"all_allowances,omitempty"`
	AllSpenderAllowances *AllSpenderAllowancesQuery `json:"all_spender_allowances,omitempty"`
	AllAccounts          *AllAccountsQuery          `json:"all_accounts,omitempty"`
	MarketingInfo        *MarketingInfoQuery        `json:"marketing_info,omitempty"`
	DownloadLogo         *DownloadLogoQuery         `json:"download_logo,omitempty"`
	Minters              *MintersQuery              `json:"minters,omitempty"`
}

// Pagination is embedded in the enumerating queries.
type Pagination struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// PageLimit returns the requested limit, defaulted and capped.
func (p Pagination) PageLimit() uint32 {
	if p.Limit == nil {
		return DefaultPageLimit
	}
	if *p.Limit > MaxPageLimit {
		return MaxPageLimit
	}
	return *p.Limit
}

// BalanceQuery returns the balance of Address, 0 if unset.
type BalanceQuery struct {
	Address string `json:"address"`
}

// TokenInfoQuery returns name, symbol, decimals and total supply.
type TokenInfoQuery struct{}

// MinterQuery returns the minter and the hard cap.
type MinterQuery struct{}

// AllowanceQuery returns how much Spender may use from Owner, 0 if unset.
type AllowanceQuery struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

// AllAllowancesQuery lists the allowances Owner has granted.
type AllAllowancesQuery struct {
	Owner string `json:"owner"`
	Pagination
}

// AllSpenderAllowancesQuery lists the allowances granted to Spender.
type AllSpenderAllowancesQuery struct {
	Spender string `json:"spender"`
	Pagination
}

// AllAccountsQuery lists every account holding a balance.
type AllAccountsQuery struct {
	Pagination
}

type MarketingInfoQuery struct{}

// DownloadLogoQuery returns the embedded logo. It fails when the logo is a URL.
type DownloadLogoQuery struct{}

// MintersQuery lists the addresses allowed to mint.
type MintersQuery struct {
	Pagination
}

// MintersResponse answers MintersQuery.
type MintersResponse struct {
	Minters []string `json:"minters"`
}

func (m QueryMsg) tags() setTags {
	var s setTags
	s.add(TagBalance, m.Balance != nil)
	s.add(TagTokenInfo, m.TokenInfo != nil)
	s.add(TagMinter, m.Minter != nil)
	s.add(TagAllowance, m.Allowance != nil)
	s.add(TagAllAllowances, m.AllAllowances != nil)
	s.add(TagAllSpenderAllowances, m.AllSpenderAllowances != nil)
	s.add(TagAllAccounts, m.AllAccounts != nil)
	s.add(TagMarketingInfo, m.MarketingInfo != nil)
	s.add(TagDownloadLogo, m.DownloadLogo != nil)
	s.add(TagMinters, m.Minters != nil)
	return s
}

// Variant returns the wire tag of the set variant.
func (m QueryMsg) Variant() (string, error) {
	return m.tags().one()
}

func (m QueryMsg) ValidateBasic() error {
	_, err := m.Variant()
	return err
}

func (m *QueryMsg) UnmarshalJSON(bz []byte) error {
	type queryMsg QueryMsg
	var v queryMsg
	if err := decodeVariant(bz, QueryTags, &v); err != nil {
		return err
	}
	if err := QueryMsg(v).ValidateBasic(); err != nil {
		return err
	}
	*m = QueryMsg(v)
	return nil
}

var responseNames = map[string]string{
	TagBalance:              "BalanceResponse",
	TagTokenInfo:            "TokenInfoResponse",
	TagMinter:               "MinterResponse",
	TagAllowance:            "AllowanceResponse",
	TagAllAllowances:        "AllAllowancesResponse",
	TagAllSpenderAllowances: "AllSpenderAllowancesResponse",
	TagAllAccounts:          "AllAccountsResponse",
	TagMarketingInfo:        "MarketingInfoResponse",
	TagDownloadLogo:         "DownloadLogoResponse",
	TagMinters:              "MintersResponse",
}

// ResponseType names the response shape of the set variant.
func (m QueryMsg) ResponseType() (string, error) {
	tag, err := m.Variant()
	if err != nil {
		return "", err
	}
	return responseNames[tag], nil
}

// NewResponse returns a pointer to a zero response of the shape the set
// variant answers with, ready to be decoded into.
func (m QueryMsg) NewResponse() (interface{}, error) {
	tag, err := m.Variant()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagBalance:
		return &cw20.BalanceResponse{}, nil
	case TagTokenInfo:
		return &cw20.TokenInfoResponse{}, nil
	case TagMinter:
		return &cw20.MinterResponse{}, nil
	case TagAllowance:
		return &cw20.AllowanceResponse{}, nil
	case TagAllAllowances:
		return &cw20.AllAllowancesResponse{}, nil
	case TagAllSpenderAllowances:
		return &cw20.AllSpenderAllowancesResponse{}, nil
	case TagAllAccounts:
		return &cw20.AllAccountsResponse{}, nil
	case TagMarketingInfo:
		return &cw20.MarketingInfoResponse{}, nil
	case TagDownloadLogo:
		return &cw20.DownloadLogoResponse{}, nil
	default:
		return &MintersResponse{}, nil
	}
}

// QueryHandler has one method per query variant, each returning that
// variant's response shape.
type QueryHandler interface {
	Balance(BalanceQuery) (cw20.BalanceResponse, error)
	TokenInfo(TokenInfoQuery) (cw20.TokenInfoResponse, error)
	Minter(MinterQuery) (*cw20.MinterResponse, error)
	Allowance(AllowanceQuery) (cw20.AllowanceResponse, error)
	AllAllowances(AllAllowancesQuery) (cw20.AllAllowancesResponse, error)
	AllSpenderAllowances(AllSpenderAllowancesQuery) (cw20.AllSpenderAllowancesResponse, error)
	AllAccounts(AllAccountsQuery) (cw20.AllAccountsResponse, error)
	MarketingInfo(MarketingInfoQuery) (cw20.MarketingInfoResponse, error)
	DownloadLogo(DownloadLogoQuery) (cw20.DownloadLogoResponse, error)
	Minters(MintersQuery) (MintersResponse, error)
}

// Dispatch validates m, runs the matching handler method and returns its
// response.
func (m QueryMsg) Dispatch(h QueryHandler) (interface{}, error) {
	if err := m.ValidateBasic(); err != nil {
		return nil, err
	}
	switch {
	case m.Balance != nil:
		return h.Balance(*m.Balance)
	case m.TokenInfo != nil:
		return h.TokenInfo(*m.TokenInfo)
	case m.Minter != nil:
		return h.Minter(*m.Minter)
	case m.Allowance != nil:
		return h.Allowance(*m.Allowance)
	case m.AllAllowances != nil:
		return h.AllAllowances(*m.AllAllowances)
	case m.AllSpenderAllowances != nil:
		return h.AllSpenderAllowances(*m.AllSpenderAllowances)
	case m.AllAccounts != nil:
		return h.AllAccounts(*m.AllAccounts)
	case m.MarketingInfo != nil:
		return h.MarketingInfo(*m.MarketingInfo)
	case m.DownloadLogo != nil:
		return h.DownloadLogo(*m.DownloadLogo)
	default:
		return h.Minters(*m.Minters)
	}
}
