package cli

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

// topicContent returns the embedded documentation for a topic name.
func topicContent(name string) (string, bool) {
	data, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// topicNames lists the embedded topics, sorted.
func topicNames() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown renders a topic for the terminal, falling back to the
// raw markdown if glamour cannot set up a renderer.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     MsgTopicsShort,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := topicNames()
				if len(names) == 0 {
					fmt.Fprintln(out, "No help topics available.")
					return nil
				}
				fmt.Fprintln(out, "Available help topics:")
				for _, name := range names {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintln(out, "\nUse 'assort topics <topic>' to read about a specific topic.")
				return nil
			}

			content, ok := topicContent(args[0])
			if !ok {
				return fmt.Errorf("unknown topic: %s", args[0])
			}
			fmt.Fprint(out, renderMarkdown(content))
			return nil
		},
	}
}
