package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// checkKeyPrefix probe keys never collide with the configured note keys
const checkKeyPrefix = "fast-note-keep-check-"

func init() {
	var configFlag string

	checkCmd := &cobra.Command{
		Use:          "check",
		Short:        "Verify the configured store can write, read and delete a key",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(configFlag)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			key := checkKeyPrefix + uuid.NewString()
			value := uuid.NewString()

			if err := a.KV.Set(ctx, key, value); err != nil {
				return errors.Wrap(err, "write probe key")
			}
			got, ok, err := a.KV.Get(ctx, key)
			if err != nil {
				return errors.Wrap(err, "read probe key")
			}
			if !ok || got != value {
				return errors.Errorf("probe key read back %q, want %q", got, value)
			}
			if err := a.KV.Delete(ctx, key); err != nil {
				return errors.Wrap(err, "delete probe key")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "store %s ok\n", a.StoreType())
			return nil
		},
	}
	checkCmd.Flags().StringVarP(&configFlag, "config", "c", "", "config file")
	rootCmd.AddCommand(checkCmd)
}
