package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"signus/internal/store"
)

var errSignatureMismatch = errors.New("signature does not match")

func signCmd() *cobra.Command {
	var myPath, doc string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a document with a local identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			myDid, err := store.LoadMyDid(myPath)
			if err != nil {
				return err
			}
			sig, err := wire.Signus.Sign(myDid, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&myPath, "my", "", "local identity file")
	cmd.Flags().StringVar(&doc, "doc", "", "document to sign")
	_ = cmd.MarkFlagRequired("my")
	_ = cmd.MarkFlagRequired("doc")
	return cmd
}

// verify exits non-zero when the signature does not match.
func verifyCmd() *cobra.Command {
	var theirPath, doc, sig string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a signature against a remote identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			their, err := store.LoadTheirDid(theirPath)
			if err != nil {
				return err
			}
			ok, err := wire.Signus.Verify(their, doc, sig)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errSignatureMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&theirPath, "their", "", "remote identity file")
	cmd.Flags().StringVar(&doc, "doc", "", "signed document")
	cmd.Flags().StringVar(&sig, "sig", "", "signature (base58)")
	for _, f := range []string{"their", "doc", "sig"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
