/*
Package msg defines the wire contract of a cw20-base token: the instantiate
message and its validation, the execute and query message families, the
migrate marker and the minters response.

ExecuteMsg and QueryMsg are externally tagged unions. Each is a struct with
one pointer field per variant and exactly one of them set:

	{"transfer": {"recipient": "wasm1...", "amount": "100"}}
	{"all_accounts": {"limit": 10}}

Decoding rejects objects with no tag, several tags or an unknown tag. Every
field without omitempty is required and must not be null, and keys must
match field names exactly. Other unknown keys are ignored.
Consumers route a message with Dispatch, which takes a handler interface
holding one method per variant.
*/
package msg
