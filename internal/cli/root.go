// Package cli assembles the assort command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/assort/internal/version"
	"github.com/arthur-debert/assort/pkg/classify"
	"github.com/arthur-debert/assort/pkg/config"
	"github.com/arthur-debert/assort/pkg/filesystem"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/paths"
	"github.com/arthur-debert/assort/pkg/repository"
	"github.com/arthur-debert/assort/pkg/synthfs"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		noColor   bool
		rootDir   string
	)

	rootCmd := &cobra.Command{
		Use:     "assort",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", MsgFlagRoot)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// env bundles the wired-up collaborators every command needs.
type env struct {
	paths      paths.Paths
	cfg        *config.Config
	repo       *repository.Repository
	classifier *classify.Classifier
}

// newEnv locates the repository, loads its configuration and wires the
// repository over the real filesystem with the synthfs executor.
func newEnv(cmd *cobra.Command) (*env, error) {
	rootDir, _ := cmd.Root().PersistentFlags().GetString("root")

	p, err := paths.New(rootDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.RepoRoot())
	}

	cfg, err := config.Load(p.RepoRoot())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	fsys := filesystem.NewOS()
	repo := repository.New(fsys, p, cfg,
		repository.WithExecutor(synthfs.NewExecutor(p)))

	return &env{
		paths:      p,
		cfg:        cfg,
		repo:       repo,
		classifier: classify.New(cfg, fsys, p),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "assort version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "ASSORT",
				Section: "1",
			}
			return doc.GenManTree(root, header, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "/tmp", "Directory to write man pages to")
	return cmd
}
