package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/baron-chain/cw20-bc/cw20"
	"github.com/baron-chain/cw20-bc/msg"
)

const (
	flagVerifyLogo  = "verify-logo"
	flagCheckSupply = "check-supply"

	familyInstantiate = "instantiate"
	familyExecute     = "execute"
	familyQuery       = "query"
	familyMigrate     = "migrate"
)

type validateResult struct {
	Valid         bool          `json:"valid"`
	Name          string        `json:"name"`
	Symbol        string        `json:"symbol"`
	Decimals      uint8         `json:"decimals"`
	InitialSupply cw20.Uint128  `json:"initial_supply"`
	Cap           *cw20.Uint128 `json:"cap,omitempty"`
}

func buildValidateCommand(clientCtx *clientContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate an instantiate message read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(clientCtx, args)
			if err != nil {
				return err
			}
			var m msg.InstantiateMsg
			if err := json.Unmarshal(bz, &m); err != nil {
				return err
			}
			return runValidate(clientCtx, m)
		},
	}
	cmd.Flags().Bool(flagVerifyLogo, false, "also verify an embedded marketing logo")
	cmd.Flags().Bool(flagCheckSupply, true, "check the initial supply against the mint cap")
	return cmd
}

func runValidate(clientCtx *clientContext, m msg.InstantiateMsg) error {
	logger := clientCtx.Logger.With("name", m.Name, "symbol", m.Symbol)

	if err := m.Validate(); err != nil {
		logger.Error("instantiate message rejected", "err", err)
		return err
	}
	if cast.ToBool(clientCtx.Viper.Get(flagCheckSupply)) {
		if err := m.CheckSupply(); err != nil {
			logger.Error("initial supply rejected", "err", err)
			return err
		}
	}
	if cast.ToBool(clientCtx.Viper.Get(flagVerifyLogo)) && m.Marketing != nil && m.Marketing.Logo != nil {
		if err := m.Marketing.Logo.Verify(); err != nil {
			logger.Error("marketing logo rejected", "err", err)
			return err
		}
	}

	supply, err := m.InitialSupply()
	if err != nil {
		return err
	}
	logger.Info("instantiate message valid", "decimals", m.Decimals, "supply", supply.String())

	return printOutput(clientCtx, validateResult{
		Valid:         true,
		Name:          m.Name,
		Symbol:        m.Symbol,
		Decimals:      m.Decimals,
		InitialSupply: supply,
		Cap:           m.Cap(),
	})
}

func buildDecodeCommand(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:       "decode {instantiate|execute|query|migrate} [file]",
		Short:     "Decode a message strictly and print it normalised",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{familyInstantiate, familyExecute, familyQuery, familyMigrate},
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(clientCtx, args[1:])
			if err != nil {
				return err
			}
			decoded, variant, err := decodeMessage(args[0], bz)
			if err != nil {
				return err
			}
			clientCtx.Logger.Debug("decoded message", "family", args[0], "variant", variant)
			return printOutput(clientCtx, decoded)
		},
	}
}

// decodeMessage decodes bz as the given message family and returns the
// value along with the variant tag, if the family has one.
func decodeMessage(family string, bz []byte) (interface{}, string, error) {
	switch family {
	case familyInstantiate:
		var m msg.InstantiateMsg
		err := json.Unmarshal(bz, &m)
		return m, "", err
	case familyExecute:
		var m msg.ExecuteMsg
		if err := json.Unmarshal(bz, &m); err != nil {
			return nil, "", err
		}
		tag, err := m.Variant()
		return m, tag, err
	case familyQuery:
		var m msg.QueryMsg
		if err := json.Unmarshal(bz, &m); err != nil {
			return nil, "", err
		}
		tag, err := m.Variant()
		return m, tag, err
	case familyMigrate:
		var m msg.MigrateMsg
		dec := json.NewDecoder(bytes.NewReader(bz))
		dec.DisallowUnknownFields()
		err := dec.Decode(&m)
		return m, "", err
	default:
		return nil, "", fmt.Errorf("unknown message family %q", family)
	}
}

type responseTypeResult struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

func buildResponseTypeCommand(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:   "response-type [file]",
		Short: "Print the response shape a query message is answered with",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(clientCtx, args)
			if err != nil {
				return err
			}
			var q msg.QueryMsg
			if err := json.Unmarshal(bz, &q); err != nil {
				return err
			}
			tag, err := q.Variant()
			if err != nil {
				return err
			}
			resp, err := q.ResponseType()
			if err != nil {
				return err
			}
			return printOutput(clientCtx, responseTypeResult{Query: tag, Response: resp})
		},
	}
}

func buildWrapCommand(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:       "wrap {execute|query} <contract> [file]",
		Short:     "Wrap a message in the wasm envelope addressed to a token contract",
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: []string{familyExecute, familyQuery},
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(clientCtx, args[2:])
			if err != nil {
				return err
			}
			contract := msg.Contract{Addr: args[1]}

			switch args[0] {
			case familyExecute:
				var m msg.ExecuteMsg
				if err := json.Unmarshal(bz, &m); err != nil {
					return err
				}
				cosmosMsg, err := contract.Call(m)
				if err != nil {
					return err
				}
				return printOutput(clientCtx, cosmosMsg)
			case familyQuery:
				var q msg.QueryMsg
				if err := json.Unmarshal(bz, &q); err != nil {
					return err
				}
				req, err := contract.Query(q)
				if err != nil {
					return err
				}
				return printOutput(clientCtx, req)
			default:
				return fmt.Errorf("cannot wrap message family %q", args[0])
			}
		},
	}
}
