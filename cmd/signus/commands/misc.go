package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"signus/internal/didkey"
	"signus/internal/domain"
	"signus/internal/encoding"
	"signus/internal/seed"
	"signus/internal/store"
)

func mnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a fresh 24-word BIP-39 mnemonic for create --mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := seed.NewMnemonic()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func didkeyCmd() *cobra.Command {
	var theirPath string
	cmd := &cobra.Command{
		Use:   "didkey",
		Short: "Render a remote identity's verkey as a did:key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			their, err := store.LoadTheirDid(theirPath)
			if err != nil {
				return err
			}
			verKey, err := encoding.Base58{}.Decode(their.VerKey)
			if err != nil {
				return fmt.Errorf("verkey: %w", err)
			}
			did, err := didkey.Format(their.EffectiveCryptoType(), verKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), did)
			return nil
		},
	}
	cmd.Flags().StringVar(&theirPath, "their", "", "remote identity file")
	_ = cmd.MarkFlagRequired("their")
	return cmd
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the enabled crypto types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range wire.Registry.Types() {
				if t == domain.DefaultCryptoType {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", t)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}
