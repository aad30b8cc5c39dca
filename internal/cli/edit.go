package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand creates the interactive edit command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <document>",
		Short: "Browse a document's nodes and edit them in a dialog",
		Long: `Open an interactive view of the nodes derived from a JSON document.

Select a node and press enter to open its content dialog. In the dialog press
e to edit the node's JSON value, ctrl+s to save it into the document, and esc
to cancel the edit or close the dialog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireDocument(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			ws, err := c.openWorkspace(ctx, name)
			if err != nil {
				return err
			}
			defer ws.Close()

			// Log output would draw over the alternate screen.
			c.Logger.SetOutput(io.Discard)
			defer c.Logger.SetOutput(c.errOut)

			model := NewEditorModel(ctx, name, ws.store, ws.selection, ws.cfg.Editor, c.Logger)
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(EditorModel); ok && m.Status != "" {
				printInfo(c.out, "%s", m.Status)
			}
			return nil
		},
	}
}
