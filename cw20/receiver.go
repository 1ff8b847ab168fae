package cw20

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
)

// Cw20ReceiveMsg is delivered to a contract that receives tokens through
// send or send_from. Msg is the opaque payload supplied by the sender.
type Cw20ReceiveMsg struct {
	Sender string  `json:"sender"`
	Amount Uint128 `json:"amount"`
	Msg    []byte  `json:"msg"`
}

func (m *Cw20ReceiveMsg) UnmarshalJSON(bz []byte) error {
	type cw20ReceiveMsg Cw20ReceiveMsg
	return UnmarshalStrict(bz, (*cw20ReceiveMsg)(m))
}

type receiverExecuteMsg struct {
	Receive Cw20ReceiveMsg `json:"receive"`
}

// IntoBinary serializes the message as the receiving contract expects it,
// wrapped in a "receive" tag.
func (m Cw20ReceiveMsg) IntoBinary() ([]byte, error) {
	return json.Marshal(receiverExecuteMsg{Receive: m})
}

// IntoCosmosMsg builds the wasm execute message that delivers m to contract.
func (m Cw20ReceiveMsg) IntoCosmosMsg(contract string) (wasmvmtypes.CosmosMsg, error) {
	bz, err := m.IntoBinary()
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	return wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{
			Execute: &wasmvmtypes.ExecuteMsg{
				ContractAddr: contract,
				Msg:          bz,
				Funds:        wasmvmtypes.Coins{},
			},
		},
	}, nil
}
