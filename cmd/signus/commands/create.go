package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"signus/internal/domain"
	"signus/internal/seed"
	"signus/internal/store"
)

// create: generate a local identity, optionally from a seed or mnemonic.
func createCmd() *cobra.Command {
	var (
		info       domain.MyDidInfo
		mnemonic   string
		passphrase string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a local identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mnemonic != "" {
				if info.Seed != "" {
					return errors.New("use either --seed or --mnemonic, not both")
				}
				s, err := seed.FromMnemonic(mnemonic, passphrase)
				if err != nil {
					return err
				}
				info.Seed = s
			}

			myDid, err := wire.Signus.CreateMyDid(info)
			if err != nil {
				return err
			}
			if out == "" {
				return printJSON(cmd.OutOrStdout(), myDid)
			}
			if err := store.SaveMyDid(out, myDid); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Identity created.\nDID: %s\nVerkey: %s\n", myDid.DID, myDid.VerKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&info.DID, "did", "", "explicit DID (base58)")
	cmd.Flags().StringVar(&info.Seed, "seed", "", "seed for the signing key (32 characters for ed25519)")
	cmd.Flags().StringVar(&info.CryptoType, "type", "", "crypto type (default ed25519)")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "derive the signing key from a BIP-39 mnemonic")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "optional BIP-39 passphrase for --mnemonic")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the identity to this file instead of stdout")
	return cmd
}
