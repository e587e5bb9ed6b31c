package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLookupCmd resolves tags and keywords against the dictionary
func NewLookupCmd(ctx context.Context, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <tag|keyword>...",
		Short: "describe tags or keywords",
		Long:  "lookup accepts (gggg,eeee), gggg,eeee, ggggeeee or a standard keyword. --creator scopes tags to a private creator.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDictionary(ctx, v)
			if err != nil {
				return err
			}
			creator, _ := cmd.Flags().GetString("creator")
			format, _ := cmd.Flags().GetString("format")
			entries := make([]*dict.Entry, 0, len(args))
			for _, arg := range args {
				e, err := lookup(d, arg, creator)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}
			return printEntries(cmd.OutOrStdout(), format, entries)
		},
	}
	pf := cmd.Flags()
	pf.String("creator", "", "private creator scoping the tags")
	pf.StringP("format", "f", "text", "output format (text|json)")
	return cmd
}

// lookup reads arg as a tag, then as a keyword
func lookup(d *dict.Dictionary, arg, creator string) (*dict.Entry, error) {
	t, err := tag.Parse(arg)
	if err != nil {
		e, ok := d.KeywordLookup(arg)
		if !ok {
			return nil, fmt.Errorf("%q is neither a tag nor a known keyword", arg)
		}
		return e, nil
	}
	if creator != "" {
		t = t.WithCreator(creator)
	}
	return d.Lookup(t), nil
}

func printEntries(w io.Writer, format string, entries []*dict.Entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "text":
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e, e.Name)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// NewVMCmd parses value multiplicity text
func NewVMCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm <text>...",
		Short: "parse value multiplicities",
		Long:  "vm parses multiplicities such as 1, 1-3, 2-2n or 1-n and, with --count, checks a value count against them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			w := cmd.OutOrStdout()
			for _, arg := range args {
				m, err := vm.Parse(arg)
				if err != nil {
					return err
				}
				hi := fmt.Sprint(m.Maximum)
				if m.IsUnbounded() {
					hi = "n"
				}
				fmt.Fprintf(w, "%s\tmin=%d max=%s step=%d", m, m.Minimum, hi, m.Multiplicity)
				if count >= 0 {
					fmt.Fprintf(w, " allows(%d)=%t", count, m.Allows(count))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", -1, "value count to check")
	return cmd
}
