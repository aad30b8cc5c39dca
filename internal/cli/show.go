package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodeedit/pkg/modal"
)

// showCommand creates the show command, which prints what the node content
// dialog displays for one node.
func (c *CLI) showCommand() *cobra.Command {
	var (
		path  string
		raw   bool
		color bool
	)

	cmd := &cobra.Command{
		Use:   "show <document>",
		Short: "Print a node's content and path",
		Example: `  nodeedit show order.json
  nodeedit show order.json --path '$["customer"][0]'
  nodeedit show order.json --path '$["total"]' --raw`,
		Args: cobra.ExactArgs(1),
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

			if _, err := ws.selectPath(path); err != nil {
				return err
			}
			dialog := modal.New(ws.selection, ws.store, modal.Options{Logger: c.Logger})

			code := dialog.Code()
			if raw {
				fmt.Fprintln(c.out, code)
				return nil
			}
			if color {
				code = highlight(code, ws.cfg.Editor.Theme)
			}
			printKeyValue(c.out, "Path", StyleHighlight.Render(dialog.PathString()))
			if n := dialog.Node(); n != nil && len(n.Path) > 0 {
				printKeyValue(c.out, "Pointer", n.Path.Pointer())
			}
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "$", "node path in bracket form")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the node content")
	cmd.Flags().BoolVar(&color, "color", false, "highlight the node content")
	c.registerPathCompletion(cmd)

	return cmd
}
