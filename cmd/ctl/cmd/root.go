package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "dictctl",
		Short:         "a CLI to query DICOM dictionaries and generate UIDs",
		Long:          "dictctl looks up tags and keywords in the DICOM data dictionary, parses value multiplicities and derives UIDs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v); err != nil {
				return err
			}
			level, err := logging.ParseLevel(v.GetString(keyLogLevel))
			if err != nil {
				level = slog.LevelInfo
			}
			var out io.Writer = cmd.ErrOrStderr()
			if path := v.GetString(keyLogFile); path != "" {
				out = logging.RotatingFile(path, v.GetInt(keyLogMaxMB))
			}
			slog.SetDefault(logging.Logger(out, v.GetBool(keyLogJSON), level))
			if err != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", v.GetString(keyLogLevel), "error", err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewLookupCmd(ctx, v),
		NewVMCmd(ctx),
		NewUIDCmd(ctx, v),
		NewDictCmd(ctx, v),
	)
	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "log as JSON")
	pf.String("log-file", "", "log to a rotating file instead of stderr")
	pf.StringSlice("dict", nil, "extra dictionary descriptors to load over the built-in one")
	bindFlags(v, pf)
	return cmd
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}
