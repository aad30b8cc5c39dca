package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/document"
	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/modal"
)

// setCommand creates the set command: a scripted edit-and-save through the
// node content dialog.
func (c *CLI) setCommand() *cobra.Command {
	var (
		path      string
		value     string
		valueFile string
	)

	cmd := &cobra.Command{
		Use:   "set <document>",
		Short: "Replace a node's JSON value",
		Example: `  nodeedit set order.json --path '$["customer"][0]' --value '{"name": "Grace"}'
  nodeedit set order.json --path '$["items"]' --file items.json
  cat total.json | nodeedit set order.json --path '$["total"]' --file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireDocument(args)
			if err != nil {
				return err
			}
			draft, err := readValue(cmd, value, valueFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ws, err := c.openWorkspace(ctx, name)
			if err != nil {
				return err
			}
			defer ws.Close()

			if _, err := ws.selectPath(path); err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			dialog := modal.New(ws.selection, ws.store, modal.Options{Logger: c.Logger})
			dialog.Open()
			dialog.Edit(ctx)
			dialog.SetDraft(draft)
			if err := dialog.Save(ctx); err != nil {
				return err
			}
			prog.debug("Saved " + dialog.PathString())

			printSuccess(c.out, "Saved %s", StyleHighlight.Render(dialog.PathString()))
			printDetail(c.out, "%s %s", iconArrow, document.Describe(ws.store))
			if ws.cfg.Store.Backend == config.BackendMemory {
				printWarning(c.out, "memory backend: the change was not persisted")
			}
			printNextStep(c.out, "View the node", fmt.Sprintf("%s show %s --path '%s'", appName, name, dialog.PathString()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "node path in bracket form (required)")
	cmd.Flags().StringVar(&value, "value", "", "new JSON value")
	cmd.Flags().StringVarP(&valueFile, "file", "f", "", "read the new JSON value from a file (- for stdin)")
	_ = cmd.MarkFlagRequired("path")
	cmd.MarkFlagsMutuallyExclusive("value", "file")
	cmd.MarkFlagsOneRequired("value", "file")
	c.registerPathCompletion(cmd)

	return cmd
}

// readValue returns the draft from --value or --file.
func readValue(cmd *cobra.Command, value, file string) (string, error) {
	if file == "" {
		return value, nil
	}
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read value")
	}
	return string(data), nil
}
