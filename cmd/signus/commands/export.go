package commands

import (
	"github.com/spf13/cobra"

	"signus/internal/store"
)

// export: strip the private keys from a local identity.
func exportCmd() *cobra.Command {
	var myPath, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the public view of a local identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			myDid, err := store.LoadMyDid(myPath)
			if err != nil {
				return err
			}
			their := myDid.TheirDid()
			if out == "" {
				return printJSON(cmd.OutOrStdout(), their)
			}
			return store.SaveTheirDid(out, their)
		},
	}
	cmd.Flags().StringVar(&myPath, "my", "", "local identity file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("my")
	return cmd
}
