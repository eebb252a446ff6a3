package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/assort/pkg/collect"
	"github.com/arthur-debert/assort/pkg/copier"
	"github.com/arthur-debert/assort/pkg/output"
)

func newDepsCmd() *cobra.Command {
	var verdicts bool

	cmd := &cobra.Command{
		Use:     "deps <root-asset>",
		Short:   MsgDepsShort,
		Long:    MsgDepsLong,
		Example: "  assort deps Scenes/city.asset\n  assort deps --verdicts Scenes/city.asset",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			rootPath := args[0]
			deps, err := collect.New(e.repo).Collect(rootPath)
			if err != nil {
				return err
			}

			if !verdicts {
				for _, dep := range deps {
					fmt.Fprintln(cmd.OutOrStdout(), dep)
				}
				return nil
			}

			noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
			plan := copier.New(e.repo, e.classifier).Plan(rootPath, deps)
			renderer := output.NewRenderer(noColor)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPlan(rootPath, plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&verdicts, "verdicts", false, "Show what organize would do with each dependency")
	return cmd
}
