package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baron-chain/cw20-bc/cw20"
	"github.com/baron-chain/cw20-bc/msg"
)

const cashToken = `{
	"name": "Cash Token",
	"symbol": "CASH",
	"decimals": 6,
	"initial_balances": [{"address": "alice", "amount": "100"}],
	"mint": {"minter": "minter", "cap": "1000"}
}`

// execCmd runs the root command with args and stdin and returns what it
// printed on stdout.
func execCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	testCases := map[string]struct {
		stdin  string
		args   []string
		exp    string
		expErr error
	}{
		"valid token": {
			stdin: cashToken,
			exp:   `{"valid":true,"name":"Cash Token","symbol":"CASH","decimals":6,"initial_supply":"100","cap":"1000"}`,
		},
		"no minter": {
			stdin: `{"name":"Cash Token","symbol":"CASH","decimals":0,"initial_balances":[]}`,
			exp:   `{"valid":true,"name":"Cash Token","symbol":"CASH","decimals":0,"initial_supply":"0"}`,
		},
		"bad symbol": {
			stdin:  `{"name":"Cash Token","symbol":"C$H","decimals":6,"initial_balances":[]}`,
			expErr: msg.ErrInvalidSymbol,
		},
		"too many decimals": {
			stdin:  `{"name":"Cash Token","symbol":"CASH","decimals":19,"initial_balances":[]}`,
			expErr: msg.ErrInvalidDecimals,
		},
		"supply above cap": {
			stdin:  `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[{"address":"a","amount":"11"}],"mint":{"minter":"m","cap":"10"}}`,
			expErr: msg.ErrCapExceeded,
		},
		"supply check disabled": {
			stdin: `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[{"address":"a","amount":"11"}],"mint":{"minter":"m","cap":"10"}}`,
			args:  []string{"--check-supply=false"},
			exp:   `{"valid":true,"name":"Cash Token","symbol":"CASH","decimals":6,"initial_supply":"11","cap":"10"}`,
		},
		"bad png ignored without verify": {
			stdin: `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[],"marketing":{"logo":{"embedded":{"png":"AAAA"}}}}`,
			exp:   `{"valid":true,"name":"Cash Token","symbol":"CASH","decimals":6,"initial_supply":"0"}`,
		},
		"bad png rejected with verify": {
			stdin:  `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[],"marketing":{"logo":{"embedded":{"png":"AAAA"}}}}`,
			args:   []string{"--verify-logo"},
			expErr: cw20.ErrInvalidPngHeader,
		},
		"amount overflow": {
			stdin:  `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[{"address":"a","amount":"340282366920938463463374607431768211456"}]}`,
			expErr: cw20.ErrInvalidUint128,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, err := execCmd(t, tc.stdin, append([]string{"validate"}, tc.args...)...)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				assert.Equal(t, exitRejected, getExitCode(err))
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.exp, out)
		})
	}
}

func TestValidateCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instantiate.json")
	require.NoError(t, os.WriteFile(path, []byte(cashToken), 0o600))

	out, err := execCmd(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	_, err = execCmd(t, "", "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, exitFailure, getExitCode(err))
}

func TestValidateCommandYAMLOutput(t *testing.T) {
	out, err := execCmd(t, cashToken, "-o", "yaml", "validate")
	require.NoError(t, err)
	assert.Equal(t, "valid: true\nname: Cash Token\nsymbol: CASH\ndecimals: 6\ninitial_supply: \"100\"\ncap: \"1000\"\n", out)
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("CW20_OUTPUT", "yaml")
	out, err := execCmd(t, cashToken, "validate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "valid: true\n"), out)

	t.Setenv("CW20_OUTPUT", "xml")
	_, err = execCmd(t, cashToken, "validate")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	testCases := map[string]struct {
		family string
		stdin  string
		exp    string
		expErr error
	}{
		"execute normalises": {
			family: familyExecute,
			stdin:  `{"transfer":{"recipient":"bob","amount":"7"}}`,
			exp:    `{"transfer":{"recipient":"bob","amount":"7"}}`,
		},
		"execute null expiry dropped": {
			family: familyExecute,
			stdin:  `{"increase_allowance":{"spender":"s","amount":"1","expires":null}}`,
			exp:    `{"increase_allowance":{"spender":"s","amount":"1"}}`,
		},
		"execute two variants": {
			family: familyExecute,
			stdin:  `{"burn":{"amount":"1"},"mint":{"recipient":"r","amount":"1"}}`,
			expErr: msg.ErrMultipleVariants,
		},
		"query": {
			family: familyQuery,
			stdin:  `{"balance":{"address":"alice"}}`,
			exp:    `{"balance":{"address":"alice"}}`,
		},
		"query unknown": {
			family: familyQuery,
			stdin:  `{"supply":{}}`,
			expErr: msg.ErrUnknownVariant,
		},
		"migrate": {
			family: familyMigrate,
			stdin:  `{}`,
			exp:    `{}`,
		},
		"instantiate": {
			family: familyInstantiate,
			stdin:  `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[]}`,
			exp:    `{"name":"Cash Token","symbol":"CASH","decimals":6,"initial_balances":[]}`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, err := execCmd(t, tc.stdin, "decode", tc.family)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				assert.Equal(t, exitRejected, getExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.exp, out)
		})
	}
}

func TestDecodeCommandRejects(t *testing.T) {
	_, err := execCmd(t, `{"version":"2"}`, "decode", familyMigrate)
	require.Error(t, err)

	_, err = execCmd(t, `{}`, "decode", "sudo")
	require.Error(t, err)
	assert.Equal(t, exitFailure, getExitCode(err))
}

func TestResponseTypeCommand(t *testing.T) {
	out, err := execCmd(t, `{"all_accounts":{"limit":5}}`, "response-type")
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"all_accounts","response":"AllAccountsResponse"}`, out)

	_, err = execCmd(t, `{}`, "response-type")
	require.ErrorIs(t, err, msg.ErrEmptyMsg)
}

func TestWrapCommand(t *testing.T) {
	out, err := execCmd(t, `{"burn":{"amount":"5"}}`, "wrap", familyExecute, "token")
	require.NoError(t, err)
	assert.JSONEq(t, `{"wasm":{"execute":{"contract_addr":"token","msg":"eyJidXJuIjp7ImFtb3VudCI6IjUifX0=","funds":[]}}}`, out)

	out, err = execCmd(t, `{"token_info":{}}`, "wrap", familyQuery, "token")
	require.NoError(t, err)
	assert.JSONEq(t, `{"wasm":{"smart":{"contract_addr":"token","msg":"eyJ0b2tlbl9pbmZvIjp7fX0="}}}`, out)

	_, err = execCmd(t, `{"token_info":{}}`, "wrap", familyMigrate, "token")
	require.Error(t, err)
}

var errForeign = errorsmod.Register("cw20-cli-test", 2, "foreign")

func TestGetExitCode(t *testing.T) {
	testCases := map[string]struct {
		err error
		exp int
	}{
		"plain error":         {err: errors.New("boom"), exp: exitFailure},
		"message error":       {err: msg.ErrInvalidName, exp: exitRejected},
		"wrapped token error": {err: errorsmod.Wrap(cw20.ErrLogoTooBig, "6000 bytes"), exp: exitRejected},
		"foreign codespace":   {err: errForeign, exp: exitFailure},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.exp, getExitCode(tc.err))
		})
	}
}
