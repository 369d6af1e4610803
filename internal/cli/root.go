// Package cli wires the nucleo commands: cobra for commands and flags,
// viper for config file and environment overrides, slog over a rotating
// file for diagnostics.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"nucleo-core/enzyme"
)

const rootLongDescription = `nucleo models single-stranded DNA and RNA as validated sequences and
derives complement strands and restriction-enzyme recognition sites.

Sequences come from --seq or the first record of a FASTA file (--fasta,
gzip and '-' for stdin accepted). Enzyme names are matched case-insensitively;
a unique fragment such as "hind" is enough.`

// app holds what every subcommand shares.
type app struct {
	v   *viper.Viper
	log *slog.Logger

	configPath string
}

// NewRootCmd builds the full command tree with its own config instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: newConfig(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:           "nucleo",
		Short:         "DNA/RNA complements and restriction-site scanning",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(a.v, a.configPath); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.log = newLogger(a.v)
			a.log.Debug("command start", "command", cmd.CommandPath(), "config", a.v.ConfigFileUsed())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	a.configureRootFlags(root)

	root.AddCommand(
		a.newComplementCmd(),
		a.newSitesCmd(),
		a.newDigestCmd(),
		a.newEnzymesCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) configureRootFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, configFlagName, "", "config file (default ./"+configFileName+")")

	pf.StringP(formatFlagName, "f", defaultFormat, "output format: text | table | json | jsonl")
	a.bindFlagToConfig(pf.Lookup(formatFlagName), formatConfigKey)

	pf.Bool(noHeaderFlagName, false, "suppress the header line in text/table output")
	a.bindFlagToConfig(pf.Lookup(noHeaderFlagName), noHeaderConfigKey)

	pf.Int(workersFlagName, defaultWorkers, "concurrent pattern scans (0 = all CPUs)")
	a.bindFlagToConfig(pf.Lookup(workersFlagName), workersConfigKey)

	pf.String(enzymeFileFlagName, "", "extra enzyme table (.yaml or whitespace-separated 'name site [cut]')")
	a.bindFlagToConfig(pf.Lookup(enzymeFileFlagName), enzymeFileConfigKey)

	pf.String(logFileFlagName, defaultLogFilename, "log file (rotated)")
	a.bindFlagToConfig(pf.Lookup(logFileFlagName), logFilenameKey)

	pf.BoolP(verboseFlagName, "v", false, "debug-level logging")
	a.bindFlagToConfig(pf.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func (a *app) bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(a.v.BindPFlag(key, flag))
}

// catalog returns the built-in enzymes overlaid with enzymes.file, if set.
func (a *app) catalog() (*enzyme.Catalog, error) {
	cat := enzyme.Builtin()
	path := a.v.GetString(enzymeFileConfigKey)
	if path == "" {
		return cat, nil
	}
	extra, err := enzyme.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("enzyme file: %w", err)
	}
	a.log.Debug("loaded enzyme file", "path", path, "entries", extra.Len())
	return cat.Merge(extra), nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
