package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/assort/pkg/organize"
	"github.com/arthur-debert/assort/pkg/output"
)

func newOrganizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "organize <root-asset>",
		Short:   MsgOrganizeShort,
		Long:    MsgOrganizeLong,
		Example: "  assort organize Scenes/city.asset\n  assort organize --dry-run Scenes/city.asset",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
			rootPath := args[0]

			log.Info().
				Str("repo_root", e.paths.RepoRoot()).
				Str("root", rootPath).
				Bool("dry_run", dryRun).
				Msg("Organizing root container")

			progress := output.NewProgressReporter()
			pipeline := organize.New(e.repo, e.classifier, e.cfg,
				organize.WithDryRun(dryRun),
				organize.WithProgress(progress.Report))

			result := pipeline.Organize(rootPath)
			progress.Done(!result.Failed())

			renderer := output.NewRenderer(noColor)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResult(rootPath, result))

			if result.Failed() {
				return fmt.Errorf(MsgErrOrganize, result.Err)
			}
			return nil
		},
	}
}
