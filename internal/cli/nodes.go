package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodeedit/pkg/document"
	"github.com/matzehuels/nodeedit/pkg/graph"
)

// nodesCommand creates the nodes command, which lists derived nodes.
func (c *CLI) nodesCommand() *cobra.Command {
	var pathsOnly bool

	cmd := &cobra.Command{
		Use:   "nodes <document>",
		Short: "List the nodes derived from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireDocument(args)
			if err != nil {
				return err
			}

			ws, err := c.openWorkspace(cmd.Context(), name)
			if err != nil {
				return err
			}
			defer ws.Close()

			g := ws.selection.Graph()
			if pathsOnly {
				for _, n := range g.Nodes() {
					fmt.Fprintln(c.out, n.Path.String())
				}
				return nil
			}

			if g.Len() == 0 {
				printInfo(c.out, "No nodes in %s", name)
				return nil
			}

			rows := make([][]string, 0, g.Len())
			for _, n := range g.Nodes() {
				rows = append(rows, []string{
					n.Path.String(),
					rowSummary(n),
					strconv.Itoa(len(g.Children(n))),
					preview(n),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Path", "Rows", "Children", "Content").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return headerStyle
					case col == 0:
						return StyleHighlight
					default:
						return StyleDim
					}
				})

			fmt.Fprintln(c.out, t.Render())
			printStats(c.out, g.Len(), len(g.Edges()), ws.cfg.Store.Backend)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pathsOnly, "paths", false, "print only node paths, one per line")
	return cmd
}

// registerPathCompletion completes --path with the node paths of the
// document given as the first argument.
func (c *CLI) registerPathCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("path", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		paths, err := c.nodePaths(cmd.Context(), args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveError
		}
		var out []string
		for _, p := range paths {
			if strings.HasPrefix(p, toComplete) {
				out = append(out, p)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

// nodePaths lists the node paths of a document.
func (c *CLI) nodePaths(ctx context.Context, name string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := document.Open(ctx, cfg.Store, name)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	contents, err := store.Contents(ctx)
	if err != nil {
		return nil, err
	}
	g, err := graph.Build([]byte(contents))
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		paths = append(paths, n.Path.String())
	}
	return paths, nil
}
