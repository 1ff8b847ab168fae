/*
Package cw20 holds the types shared by every cw20 token contract: amounts,
expirations, logos, the receive hook and the responses of the standard
queries.

Amounts are Uint128 values encoded as decimal strings, binary payloads are
[]byte and travel as base64, and the sum types (Expiration, Logo,
EmbeddedLogo) are structs with exactly one field set, matching the
externally tagged JSON the contracts speak:

	{"at_height": 12345}
	{"embedded": {"png": "iVBORw0KGgo..."}}
*/
package cw20
