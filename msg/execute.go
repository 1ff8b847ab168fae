package msg

import (
	"github.com/baron-chain/cw20-bc/cw20"
)

// Wire tags of the execute variants.
const (
	TagTransfer          = "transfer"
	TagBurn              = "burn"
	TagSend              = "send"
	TagMint              = "mint"
	TagIncreaseAllowance = "increase_allowance"
	TagDecreaseAllowance = "decrease_allowance"
	TagTransferFrom      = "transfer_from"
	TagBurnFrom          = "burn_from"
	TagSendFrom          = "send_from"
	TagUpdateMarketing   = "update_marketing"
	TagUploadLogo        = "upload_logo"
	TagUpdateMinter      = "update_minter"
	TagAddMinter         = "add_minter"
	TagRemoveMinter      = "remove_minter"
)

// ExecuteTags lists every execute variant in declaration order.
var ExecuteTags = []string{
	TagTransfer,
	TagBurn,
	TagSend,
	TagMint,
	TagIncreaseAllowance,
	TagDecreaseAllowance,
	TagTransferFrom,
	TagBurnFrom,
	TagSendFrom,
	TagUpdateMarketing,
	TagUploadLogo,
	TagUpdateMinter,
	TagAddMinter,
	TagRemoveMinter,
}

// ExecuteMsg is a state-changing command. Exactly one field is set.
type ExecuteMsg struct {
	Transfer          *Transfer          `json:"transfer,omitempty"`
	Burn              *Burn              `json:"burn,omitempty"`
	Send              *Send              `json:"send,omitempty"`
	Mint              *Mint              `json:"mint,omitempty"`
	IncreaseAllowance *IncreaseAllowance `json:"increase_allowance,omitempty"`
	DecreaseAllowance *DecreaseAllowance `json:"decrease_allowance,omitempty"`
	TransferFrom      *TransferFrom      `json:"transfer_from,omitempty"`
	BurnFrom          *BurnFrom          `json:"burn_from,omitempty"`
	SendFrom          *SendFrom          `json:"send_from,omitempty"`
	UpdateMarketing   *UpdateMarketing   `json:"update_marketing,omitempty"`
	UploadLogo        *cw20.Logo         `json:"upload_logo,omitempty"`
	UpdateMinter      *UpdateMinter      `json:"update_minter,omitempty"`
	AddMinter         *AddMinter         `json:"add_minter,omitempty"`
	RemoveMinter      *RemoveMinter      `json:"remove_minter,omitempty"`
}

// Transfer moves tokens to another account without triggering actions.
type Transfer struct {
	Recipient string       `json:"recipient"`
	Amount    cw20.Uint128 `json:"amount"`
}

// Burn destroys tokens forever.
type Burn struct {
	Amount cw20.Uint128 `json:"amount"`
}

// Send transfers tokens to a contract and calls its receive hook with Msg.
type Send struct {
	Contract string       `json:"contract"`
	Amount   cw20.Uint128 `json:"amount"`
	Msg      []byte       `json:"msg"`
}

// Mint creates new tokens for the recipient. Minters only.
type Mint struct {
	Recipient string       `json:"recipient"`
	Amount    cw20.Uint128 `json:"amount"`
}

// IncreaseAllowance lets spender use more of the sender's tokens. A set
// Expires replaces the current expiration.
type IncreaseAllowance struct {
	Spender string           `json:"spender"`
	Amount  cw20.Uint128     `json:"amount"`
	Expires *cw20.Expiration `json:"expires,omitempty"`
}

type DecreaseAllowance struct {
	Spender string           `json:"spender"`
	Amount  cw20.Uint128     `json:"amount"`
	Expires *cw20.Expiration `json:"expires,omitempty"`
}

// TransferFrom moves tokens out of owner's account using the sender's allowance.
type TransferFrom struct {
	Owner     string       `json:"owner"`
	Recipient string       `json:"recipient"`
	Amount    cw20.Uint128 `json:"amount"`
}

type BurnFrom struct {
	Owner  string       `json:"owner"`
	Amount cw20.Uint128 `json:"amount"`
}

type SendFrom struct {
	Owner    string       `json:"owner"`
	Contract string       `json:"contract"`
	Amount   cw20.Uint128 `json:"amount"`
	Msg      []byte       `json:"msg"`
}

// UpdateMarketing changes display metadata. Each field is three-state: nil
// leaves the stored value alone, "" clears it, anything else replaces it.
// See FieldUpdate.
type UpdateMarketing struct {
	Project     *string `json:"project,omitempty"`
	Description *string `json:"description,omitempty"`
	Marketing   *string `json:"marketing,omitempty"`
}

// UpdateMinter hands minting to NewMinter. A nil NewMinter removes the
// minter for good.
type UpdateMinter struct {
	NewMinter *string `json:"new_minter,omitempty"`
}

type AddMinter struct {
	Minter string `json:"minter"`
}

type RemoveMinter struct {
	Minter string `json:"minter"`
}

// FieldAction is what an UpdateMarketing field asks for.
type FieldAction int

const (
	FieldUnchanged FieldAction = iota
	FieldCleared
	FieldSet
)

func (a FieldAction) String() string {
	switch a {
	case FieldCleared:
		return "clear"
	case FieldSet:
		return "set"
	default:
		return "unchanged"
	}
}

// FieldUpdate classifies a three-state marketing field.
func FieldUpdate(v *string) FieldAction {
	switch {
	case v == nil:
		return FieldUnchanged
	case *v == "":
		return FieldCleared
	default:
		return FieldSet
	}
}

func (m ExecuteMsg) tags() setTags {
	var s setTags
	s.add(TagTransfer, m.Transfer != nil)
	s.add(TagBurn, m.Burn != nil)
	s.add(TagSend, m.Send != nil)
	s.add(TagMint, m.Mint != nil)
	s.add(TagIncreaseAllowance, m.IncreaseAllowance != nil)
	s.add(TagDecreaseAllowance, m.DecreaseAllowance != nil)
	s.add(TagTransferFrom, m.TransferFrom != nil)
	s.add(TagBurnFrom, m.BurnFrom != nil)
	s.add(TagSendFrom, m.SendFrom != nil)
	s.add(TagUpdateMarketing, m.UpdateMarketing != nil)
	s.add(TagUploadLogo, m.UploadLogo != nil)
	s.add(TagUpdateMinter, m.UpdateMinter != nil)
	s.add(TagAddMinter, m.AddMinter != nil)
	s.add(TagRemoveMinter, m.RemoveMinter != nil)
	return s
}

// Variant returns the wire tag of the set variant.
func (m ExecuteMsg) Variant() (string, error) {
	return m.tags().one()
}

// ValidateBasic checks that exactly one variant is set and that nested
// sum types are well formed. Addresses and amounts are not inspected.
func (m ExecuteMsg) ValidateBasic() error {
	tag, err := m.Variant()
	if err != nil {
		return err
	}
	switch tag {
	case TagIncreaseAllowance:
		return validateExpires(m.IncreaseAllowance.Expires)
	case TagDecreaseAllowance:
		return validateExpires(m.DecreaseAllowance.Expires)
	case TagUploadLogo:
		return m.UploadLogo.ValidateBasic()
	}
	return nil
}

func validateExpires(e *cw20.Expiration) error {
	if e == nil {
		return nil
	}
	return e.ValidateBasic()
}

// UnmarshalJSON requires an object with exactly one known variant tag.
func (m *ExecuteMsg) UnmarshalJSON(bz []byte) error {
	type executeMsg ExecuteMsg
	var v executeMsg
	if err := decodeVariant(bz, ExecuteTags, &v); err != nil {
		return err
	}
	if err := ExecuteMsg(v).ValidateBasic(); err != nil {
		return err
	}
	*m = ExecuteMsg(v)
	return nil
}

// ExecuteHandler has one method per execute variant. Implementations are
// checked for completeness by the compiler.
type ExecuteHandler interface {
	Transfer(Transfer) error
	Burn(Burn) error
	Send(Send) error
	Mint(Mint) error
	IncreaseAllowance(IncreaseAllowance) error
	DecreaseAllowance(DecreaseAllowance) error
	TransferFrom(TransferFrom) error
	BurnFrom(BurnFrom) error
	SendFrom(SendFrom) error
	UpdateMarketing(UpdateMarketing) error
	UploadLogo(cw20.Logo) error
	UpdateMinter(UpdateMinter) error
	AddMinter(AddMinter) error
	RemoveMinter(RemoveMinter) error
}

// Dispatch validates m and hands the set variant to h.
func (m ExecuteMsg) Dispatch(h ExecuteHandler) error {
	if err := m.ValidateBasic(); err != nil {
		return err
	}
	switch {
	case m.Transfer != nil:
		return h.Transfer(*m.Transfer)
	case m.Burn != nil:
		return h.Burn(*m.Burn)
	case m.Send != nil:
		return h.Send(*m.Send)
	case m.Mint != nil:
		return h.Mint(*m.Mint)
	case m.IncreaseAllowance != nil:
		return h.IncreaseAllowance(*m.IncreaseAllowance)
	case m.DecreaseAllowance != nil:
		return h.DecreaseAllowance(*m.DecreaseAllowance)
	case m.TransferFrom != nil:
		return h.TransferFrom(*m.TransferFrom)
	case m.BurnFrom != nil:
		return h.BurnFrom(*m.BurnFrom)
	case m.SendFrom != nil:
		return h.SendFrom(*m.SendFrom)
	case m.UpdateMarketing != nil:
		return h.UpdateMarketing(*m.UpdateMarketing)
	case m.UploadLogo != nil:
		return h.UploadLogo(*m.UploadLogo)
	case m.UpdateMinter != nil:
		return h.UpdateMinter(*m.UpdateMinter)
	case m.AddMinter != nil:
		return h.AddMinter(*m.AddMinter)
	default:
		return h.RemoveMinter(*m.RemoveMinter)
	}
}
