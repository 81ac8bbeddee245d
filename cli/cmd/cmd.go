package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	exchangerates "github.com/malusev998/exchange-rates"
	"github.com/malusev998/exchange-rates/fetchers"
)

const envPrefix = "EXCHANGE_RATES"

type (
	Config struct {
		Ctx      context.Context
		Args     []string
		EnvFiles []string
		Now      func() time.Time
	}

	settings struct {
		URL        string
		Currencies []exchangerates.Code
		Timeout    time.Duration
		Debug      bool
	}
)

// normalizeArgs ends flag parsing before the first single-dash argument
// that is not a registered shorthand, so values like -1 or -1.5 reach the
// day count validation instead of failing as unknown flags.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args)+1)

	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' && cmd.Flags().ShorthandLookup(arg[1:2]) == nil {
			out = append(out, "--")
			return append(out, args[i:]...)
		}

		out = append(out, arg)
	}

	return out
}

func loadEnv(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("url", fetchers.PrivatBankURL)
	v.SetDefault("currencies", []string{string(exchangerates.EUR), string(exchangerates.USD)})
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range []string{"url", "currencies", "timeout", "debug"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return nil, err
		}
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		return v, nil
	}

	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return nil, err
	}

	v.SetConfigFile(absolutePath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}

		return nil, fmt.Errorf("read config %s: %w", configFile, err)
	}

	return v, nil
}

func readSettings(v *viper.Viper) (settings, error) {
	raw := make([]string, 0)

	for _, value := range v.GetStringSlice("currencies") {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				raw = append(raw, part)
			}
		}
	}

	codes, err := exchangerates.ConvertToCodesFromStringSlice(raw)
	if err != nil {
		return settings{}, err
	}

	return settings{
		URL:        v.GetString("url"),
		Currencies: codes,
		Timeout:    v.GetDuration("timeout"),
		Debug:      v.GetBool("debug"),
	}, nil
}

func NewRootCommand(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "exchange-rates <number_of_days>",
		Short:        "PrivatBank EUR/USD archive rates for the last days",
		Version:      "v1.0.0",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	rootCmd.Flags().String("config", "./config.yml", "Path to config file")
	rootCmd.Flags().Bool("debug", false, "Debug flag")
	rootCmd.Flags().String("url", fetchers.PrivatBankURL, "Exchange rates archive endpoint")
	rootCmd.Flags().StringSlice("currencies", []string{string(exchangerates.EUR), string(exchangerates.USD)}, "Currencies to extract")
	rootCmd.Flags().Duration("timeout", 0, "Per request timeout, 0 disables it")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.InitDefaultVersionFlag()

	rootCmd.RunE = fetch(config)

	return rootCmd
}

func Execute(config *Config) error {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	rootCmd := NewRootCommand(config)
	rootCmd.SetArgs(normalizeArgs(rootCmd, config.Args))

	return rootCmd.ExecuteContext(ctx)
}
