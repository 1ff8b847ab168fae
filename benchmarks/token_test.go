package benchmarks

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baron-chain/cw20-bc/cw20"
	"github.com/baron-chain/cw20-bc/msg"
)

const (
	defaultInitialBalance = 100000000000
	defaultDecimals       = 6
)

// TokenInfo is a freshly instantiated token with numAccounts holders.
type TokenInfo struct {
	Contract    msg.Contract
	Minter      string
	Accounts    []string
	Instantiate msg.InstantiateMsg
}

func InitializeToken(b testing.TB, numAccounts int) TokenInfo {
	minter := accountAddress(0)
	accounts, balances := createAccountsAndBalances(numAccounts)

	instantiate := msg.InstantiateMsg{
		Name:            "Bench Token",
		Symbol:          "BENCH",
		Decimals:        defaultDecimals,
		InitialBalances: balances,
		Mint:            &cw20.MinterResponse{Minter: minter},
	}
	require.NoError(b, instantiate.Validate())
	require.NoError(b, instantiate.CheckSupply())

	return TokenInfo{
		Contract:    msg.Contract{Addr: "cosmos14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9s4hmalr"},
		Minter:      minter,
		Accounts:    accounts,
		Instantiate: instantiate,
	}
}

func createAccountsAndBalances(numAccounts int) ([]string, []cw20.Cw20Coin) {
	accounts := make([]string, numAccounts)
	balances := make([]cw20.Cw20Coin, numAccounts)
	for i := range accounts {
		accounts[i] = accountAddress(i + 1)
		balances[i] = cw20.Cw20Coin{
			Address: accounts[i],
			Amount:  cw20.NewUint128(defaultInitialBalance),
		}
	}
	return accounts, balances
}

func accountAddress(i int) string {
	return fmt.Sprintf("cosmos1acct%034d", i)
}

// GenSequenceOfMsgs encodes numToGenerate execute messages addressed to
// random holders of the token.
func GenSequenceOfMsgs(b testing.TB, info *TokenInfo, msgGen func(*TokenInfo, string) msg.ExecuteMsg, numToGenerate int) [][]byte {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	msgs := make([][]byte, numToGenerate)
	for i := range msgs {
		recipient := info.Accounts[r.Intn(len(info.Accounts))]
		bz, err := json.Marshal(msgGen(info, recipient))
		require.NoError(b, err)
		msgs[i] = bz
	}
	return msgs
}
