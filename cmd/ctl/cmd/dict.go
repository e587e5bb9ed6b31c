package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDictCmd groups the dictionary commands
func NewDictCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "inspect the loaded dictionary",
	}
	cmd.AddCommand(newDictStatsCmd(ctx, v), newDictDumpCmd(ctx, v))
	return cmd
}

func newDictStatsCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "entry counts per scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDictionary(ctx, v)
			if err != nil {
				return err
			}
			counts := map[string]int{}
			masked := 0
			for e := range d.All() {
				counts[e.Tag.PrivateCreator]++
				if e.IsMasked() {
					masked++
				}
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "entries\t%d\n", d.Len())
			fmt.Fprintf(w, "patterns\t%d\n", masked)
			fmt.Fprintf(w, "indexed\t%d\n", d.Index().Len())
			fmt.Fprintf(w, "standard\t%d\n", counts[dict.Standard])
			for _, creator := range d.PrivateCreators() {
				fmt.Fprintf(w, "creator %q\t%d\n", creator, counts[creator])
			}
			return nil
		},
	}
}

func newDictDumpCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "list entries, standard scope first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDictionary(ctx, v)
			if err != nil {
				return err
			}
			creator, _ := cmd.Flags().GetString("creator")
			all, _ := cmd.Flags().GetBool("all")
			format, _ := cmd.Flags().GetString("format")
			var entries []*dict.Entry
			for e := range d.All() {
				if !all && e.Tag.PrivateCreator != creator {
					continue
				}
				entries = append(entries, e)
			}
			return printEntries(cmd.OutOrStdout(), format, entries)
		},
	}
	pf := cmd.Flags()
	pf.String("creator", "", "private creator scope to list, the standard scope when empty")
	pf.Bool("all", false, "list every scope")
	pf.StringP("format", "f", "text", "output format (text|json)")
	return cmd
}
