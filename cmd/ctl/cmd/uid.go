package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpfielding/dicomdict/pkg/dicos/uid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewUIDCmd groups the UID commands
func NewUIDCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uid",
		Short: "generate, derive and classify UIDs",
	}
	cmd.AddCommand(
		newUIDNewCmd(),
		newUIDFromUUIDCmd(),
		newUIDDeriveCmd(ctx, v),
		newUIDCheckCmd(),
	)
	return cmd
}

func newUIDNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "new random 2.25 UIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("count")
			for i := 0; i < n; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), uid.DeriveNew())
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "number of UIDs")
	return cmd
}

func newUIDFromUUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-uuid <uuid>...",
		Short: "map UUIDs to 2.25 UIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guid, _ := cmd.Flags().GetBool("guid")
			for _, arg := range args {
				u, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("uuid %q: %w", arg, err)
				}
				out := uid.FromUUID(u)
				if guid {
					out = uid.FromGUIDBytes(uid.GUIDBytes(u))
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().Bool("guid", false, "round trip through the mixed-endian GUID byte layout")
	return cmd
}

func newUIDDeriveCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <uid>...",
		Short: "replacement UIDs, one per distinct source",
		Long:  "derive maps each source UID to a new UID, repeated sources map to the same replacement. With a namespace the mapping is reproducible across runs.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := namespace(v)
			if err != nil {
				return err
			}
			var opts []uid.GeneratorOption
			if ns != nil {
				opts = append(opts, uid.WithNamespace(*ns))
			}
			g := uid.NewGenerator(opts...)
			for _, arg := range args {
				src, err := uid.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", src, g.Generate(src))
			}
			return nil
		},
	}
	cmd.Flags().String("namespace", "", "UUID namespace for reproducible derivation")
	bindFlags(v, cmd.Flags())
	return cmd
}

func newUIDCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <uid>...",
		Short: "validate and classify UIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				u, err := uid.Parse(arg)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s\t%s\t%s", u, u.Type, u.Name)
				if u.Retired {
					line += " (RET)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
