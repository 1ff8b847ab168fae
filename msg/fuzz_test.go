package msg

import (
	"math/big"

	fuzz "github.com/google/gofuzz"

	"github.com/baron-chain/cw20-bc/cw20"
)

// newFuzzer returns a fuzzer that only produces well-formed sum types, so
// every generated message survives strict decoding.
func newFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0.3).Funcs(
		func(u *cw20.Uint128, c fuzz.Continue) {
			hi := new(big.Int).SetUint64(c.Uint64())
			if c.RandBool() {
				hi.SetUint64(0)
			}
			n := hi.Lsh(hi, 64)
			n.Or(n, new(big.Int).SetUint64(c.Uint64()))
			*u = cw20.MustParseUint128(n.String())
		},
		func(e *cw20.Expiration, c fuzz.Continue) {
			switch c.Intn(3) {
			case 0:
				*e = cw20.ExpiresAtHeight(c.Uint64())
			case 1:
				*e = cw20.ExpiresAtTime(cw20.Timestamp(c.Uint64()))
			default:
				*e = cw20.NeverExpires()
			}
		},
		func(l *cw20.Logo, c fuzz.Continue) {
			if c.RandBool() {
				*l = cw20.LogoFromURL(c.RandString())
				return
			}
			var data []byte
			c.Fuzz(&data)
			if c.RandBool() {
				*l = cw20.SvgLogo(data)
			} else {
				*l = cw20.PngLogo(data)
			}
		},
		func(m *ExecuteMsg, c fuzz.Continue) {
			*m = ExecuteMsg{}
			switch ExecuteTags[c.Intn(len(ExecuteTags))] {
			case TagTransfer:
				m.Transfer = &Transfer{}
				c.Fuzz(m.Transfer)
			case TagBurn:
				m.Burn = &Burn{}
				c.Fuzz(m.Burn)
			case TagSend:
				m.Send = &Send{}
				c.Fuzz(m.Send)
				m.Send.Msg = nonNil(m.Send.Msg)
			case TagMint:
				m.Mint = &Mint{}
				c.Fuzz(m.Mint)
			case TagIncreaseAllowance:
				m.IncreaseAllowance = &IncreaseAllowance{}
				c.Fuzz(m.IncreaseAllowance)
			case TagDecreaseAllowance:
				m.DecreaseAllowance = &DecreaseAllowance{}
				c.Fuzz(m.DecreaseAllowance)
			case TagTransferFrom:
				m.TransferFrom = &TransferFrom{}
				c.Fuzz(m.TransferFrom)
			case TagBurnFrom:
				m.BurnFrom = &BurnFrom{}
				c.Fuzz(m.BurnFrom)
			case TagSendFrom:
				m.SendFrom = &SendFrom{}
				c.Fuzz(m.SendFrom)
				m.SendFrom.Msg = nonNil(m.SendFrom.Msg)
			case TagUpdateMarketing:
				m.UpdateMarketing = &UpdateMarketing{}
				c.Fuzz(m.UpdateMarketing)
			case TagUploadLogo:
				m.UploadLogo = &cw20.Logo{}
				c.Fuzz(m.UploadLogo)
			case TagUpdateMinter:
				m.UpdateMinter = &UpdateMinter{}
				c.Fuzz(m.UpdateMinter)
			case TagAddMinter:
				m.AddMinter = &AddMinter{}
				c.Fuzz(m.AddMinter)
			case TagRemoveMinter:
				m.RemoveMinter = &RemoveMinter{}
				c.Fuzz(m.RemoveMinter)
			}
		},
		func(m *QueryMsg, c fuzz.Continue) {
			*m = QueryMsg{}
			switch QueryTags[c.Intn(len(QueryTags))] {
			case TagBalance:
				m.Balance = &BalanceQuery{}
				c.Fuzz(m.Balance)
			case TagTokenInfo:
				m.TokenInfo = &TokenInfoQuery{}
			case TagMinter:
				m.Minter = &MinterQuery{}
			case TagAllowance:
				m.Allowance = &AllowanceQuery{}
				c.Fuzz(m.Allowance)
			case TagAllAllowances:
				m.AllAllowances = &AllAllowancesQuery{}
				c.Fuzz(m.AllAllowances)
			case TagAllSpenderAllowances:
				m.AllSpenderAllowances = &AllSpenderAllowancesQuery{}
				c.Fuzz(m.AllSpenderAllowances)
			case TagAllAccounts:
				m.AllAccounts = &AllAccountsQuery{}
				c.Fuzz(m.AllAccounts)
			case TagMarketingInfo:
				m.MarketingInfo = &MarketingInfoQuery{}
			case TagDownloadLogo:
				m.DownloadLogo = &DownloadLogoQuery{}
			case TagMinters:
				m.Minters = &MintersQuery{}
				c.Fuzz(m.Minters)
			}
		},
	)
}

// nonNil keeps required binary fields present on the wire.
func nonNil(bz []byte) []byte {
	if bz == nil {
		return []byte{}
	}
	return bz
}
