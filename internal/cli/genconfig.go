package cli

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: "  assort gen-config\n  assort gen-config --write",
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			data, err := toml.Marshal(e.cfg)
			if err != nil {
				return fmt.Errorf("failed to serialize configuration: %w", err)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			target := filepath.Join(e.paths.RepoRoot(), ".assort.toml")
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("config file already exists: %s", target)
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return fmt.Errorf("failed to write config to %s: %w", target, err)
			}

			log.Info().Str("path", target).Msg("Written config file")
			fmt.Fprintf(cmd.OutOrStdout(), "Written %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to the repository root instead of stdout")
	return cmd
}
