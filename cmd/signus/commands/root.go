package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"signus/internal/app"
)

var (
	cfgPath  string
	logLevel string
	wire     *app.Wire
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signus",
		Short:         "Create DIDs and sign, verify and encrypt with their keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		createCmd(),
		exportCmd(),
		signCmd(),
		verifyCmd(),
		encryptCmd(),
		decryptCmd(),
		mnemonicCmd(),
		didkeyCmd(),
		typesCmd(),
	)
	return root
}

// Execute runs the CLI and reports any error on stderr.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
