package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	appName   = "cw20"
	envPrefix = "CW20"

	flagConfig   = "config"
	flagOutput   = "output"
	flagLogLevel = "log-level"

	outputJSON = "json"
	outputYAML = "yaml"

	defaultLogLevel = "info"
)

// clientContext is filled in by the root command before any subcommand runs.
type clientContext struct {
	Logger log.Logger
	Output string
	In     io.Reader
	Out    io.Writer
	Viper  *viper.Viper
}

// NewRootCmd creates the cw20 command tree.
func NewRootCmd() *cobra.Command {
	clientCtx := &clientContext{Viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:               appName,
		Short:             "Validate and inspect cw20 token messages",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: createPreRunE(clientCtx),
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "config file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputJSON, "output format (json|yaml)")
	rootCmd.PersistentFlags().String(flagLogLevel, defaultLogLevel, "log level (debug|info|error|none)")

	initRootCmd(rootCmd, clientCtx)
	return rootCmd
}

func initRootCmd(rootCmd *cobra.Command, clientCtx *clientContext) {
	rootCmd.AddCommand(
		buildValidateCommand(clientCtx),
		buildDecodeCommand(clientCtx),
		buildResponseTypeCommand(clientCtx),
		buildWrapCommand(clientCtx),
	)
}

func createPreRunE(clientCtx *clientContext) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return setupCommandContext(cmd, clientCtx)
	}
}

func setupCommandContext(cmd *cobra.Command, clientCtx *clientContext) error {
	v := clientCtx.Viper
	if err := initConfig(v, cmd.Flags()); err != nil {
		return err
	}

	output := strings.ToLower(cast.ToString(v.Get(flagOutput)))
	if output != outputJSON && output != outputYAML {
		return fmt.Errorf("unknown output format %q", output)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cast.ToString(v.Get(flagLogLevel)))
	if err != nil {
		return err
	}

	clientCtx.Logger = logger
	clientCtx.Output = output
	clientCtx.In = cmd.InOrStdin()
	clientCtx.Out = cmd.OutOrStdout()
	return nil
}

// initConfig layers flags over CW20_* environment variables over the
// optional config file.
func initConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	if path := cast.ToString(v.Get(flagConfig)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}
	return nil
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	if level == "none" {
		return log.NewNopLogger(), nil
	}
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), opt), nil
}

// readInput reads the file named by the first argument, or stdin when it
// is absent or "-".
func readInput(clientCtx *clientContext, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		bz, err := io.ReadAll(clientCtx.In)
		return bz, errors.Wrap(err, "read stdin")
	}
	bz, err := os.ReadFile(args[0])
	return bz, errors.Wrapf(err, "read %s", args[0])
}

// printOutput writes v as indented JSON or, on request, as YAML with the
// JSON field order kept.
func printOutput(clientCtx *clientContext, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if clientCtx.Output == outputYAML {
		var doc yaml.MapSlice
		if err := yaml.Unmarshal(bz, &doc); err != nil {
			return errors.Wrap(err, "convert to yaml")
		}
		if bz, err = yaml.Marshal(doc); err != nil {
			return err
		}
		_, err = clientCtx.Out.Write(bz)
		return err
	}
	_, err = fmt.Fprintln(clientCtx.Out, string(bz))
	return err
}
