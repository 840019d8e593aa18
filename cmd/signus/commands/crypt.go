package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"signus/internal/encoding"
	"signus/internal/store"
)

type sealed struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// encrypt takes the plaintext already in base58 (--doc) or as text (--raw).
func encryptCmd() *cobra.Command {
	var myPath, theirPath, doc, raw string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a document for a remote identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (doc == "") == (raw == "") {
				return errors.New("exactly one of --doc or --raw is required")
			}
			if raw != "" {
				doc = encoding.Base58{}.Encode([]byte(raw))
			}

			myDid, err := store.LoadMyDid(myPath)
			if err != nil {
				return err
			}
			their, err := store.LoadTheirDid(theirPath)
			if err != nil {
				return err
			}
			ct, nonce, err := wire.Signus.Encrypt(myDid, their, doc)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sealed{Ciphertext: ct, Nonce: nonce})
		},
	}
	cmd.Flags().StringVar(&myPath, "my", "", "local (sender) identity file")
	cmd.Flags().StringVar(&theirPath, "their", "", "remote (recipient) identity file")
	cmd.Flags().StringVar(&doc, "doc", "", "plaintext, base58 encoded")
	cmd.Flags().StringVar(&raw, "raw", "", "plaintext as text")
	_ = cmd.MarkFlagRequired("my")
	_ = cmd.MarkFlagRequired("their")
	return cmd
}

func decryptCmd() *cobra.Command {
	var (
		myPath, theirPath, doc, nonce string
		raw                           bool
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a document sent by a remote identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			myDid, err := store.LoadMyDid(myPath)
			if err != nil {
				return err
			}
			their, err := store.LoadTheirDid(theirPath)
			if err != nil {
				return err
			}
			plain, err := wire.Signus.Decrypt(myDid, their, doc, nonce)
			if err != nil {
				return err
			}
			if raw {
				b, err := encoding.Base58{}.Decode(plain)
				if err != nil {
					return err
				}
				plain = string(b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}
	cmd.Flags().StringVar(&myPath, "my", "", "local (recipient) identity file")
	cmd.Flags().StringVar(&theirPath, "their", "", "remote (sender) identity file")
	cmd.Flags().StringVar(&doc, "doc", "", "ciphertext (base58)")
	cmd.Flags().StringVar(&nonce, "nonce", "", "nonce (base58)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the plaintext as text instead of base58")
	for _, f := range []string{"my", "their", "doc", "nonce"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
