package msg

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
)

// Contract addresses a deployed cw20 token and builds the wasm messages
// other contracts use to talk to it.
type Contract struct {
	Addr string
}

// Call wraps an execute message in a wasm execute CosmosMsg.
func (c Contract) Call(m ExecuteMsg, funds ...wasmvmtypes.Coin) (wasmvmtypes.CosmosMsg, error) {
	if err := m.ValidateBasic(); err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	bz, err := json.Marshal(m)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	coins := wasmvmtypes.Coins{}
	coins = append(coins, funds...)
	return wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{
			Execute: &wasmvmtypes.ExecuteMsg{
				ContractAddr: c.Addr,
				Msg:          bz,
				Funds:        coins,
			},
		},
	}, nil
}

// Query wraps a query message in a wasm smart query request.
func (c Contract) Query(q QueryMsg) (wasmvmtypes.QueryRequest, error) {
	if err := q.ValidateBasic(); err != nil {
		return wasmvmtypes.QueryRequest{}, err
	}
	bz, err := json.Marshal(q)
	if err != nil {
		return wasmvmtypes.QueryRequest{}, err
	}
	return wasmvmtypes.QueryRequest{
		Wasm: &wasmvmtypes.WasmQuery{
			Smart: &wasmvmtypes.SmartQuery{
				ContractAddr: c.Addr,
				Msg:          bz,
			},
		},
	}, nil
}
