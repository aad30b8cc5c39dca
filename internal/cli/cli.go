// Package cli implements the nodeedit command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodeedit/pkg/buildinfo"
	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/document"
	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/graph"
	"github.com/matzehuels/nodeedit/pkg/node"
	"github.com/matzehuels/nodeedit/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "nodeedit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	backend    string
	out        io.Writer
	errOut     io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		errOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "nodeedit views and edits the nodes of a JSON document",
		Long:         `nodeedit derives graph nodes from a JSON document and lets you inspect and replace the JSON value behind any node, interactively or from scripts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetModalHooks(hooks)
			observability.SetStoreHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("starting", buildinfo.KeyVals()...)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/nodeedit/config.toml)")
	root.PersistentFlags().StringVar(&c.backend, "backend", "", "document store backend: file, memory, redis, mongo")

	// Register all subcommands
	root.AddCommand(c.editCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.nodesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Store
// =============================================================================

// loadConfig reads the config file and applies command-line overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if c.backend != "" {
		cfg.Store.Backend = c.backend
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// workspace is an opened document with its derived nodes.
type workspace struct {
	cfg       config.Config
	store     document.Store
	selection *graph.Selection
}

// openWorkspace opens the document name with the configured backend and
// derives its nodes. Callers must Close the returned workspace.
func (c *CLI) openWorkspace(ctx context.Context, name string) (*workspace, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	var spin *spinner
	if cfg.Store.Backend == config.BackendRedis || cfg.Store.Backend == config.BackendMongo {
		spin = startSpinner(ctx, c.errOut, "Connecting to "+cfg.Store.Backend)
	}
	store, err := document.Open(ctx, cfg.Store, name)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return nil, err
	}

	contents, err := store.Contents(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	sel := graph.NewSelection()
	if err := sel.Load([]byte(contents)); err != nil {
		store.Close()
		return nil, err
	}

	c.Logger.Debug("opened document", "store", document.Describe(store), "backend", cfg.Store.Backend, "nodes", sel.Graph().Len())
	prog.debug(fmt.Sprintf("Loaded %s", name))
	return &workspace{cfg: cfg, store: store, selection: sel}, nil
}

// Close releases the document store.
func (w *workspace) Close() error {
	return w.store.Close()
}

// selectPath parses a bracket path and selects its node.
func (w *workspace) selectPath(s string) (*node.Node, error) {
	p, err := node.ParsePath(s)
	if err != nil {
		return nil, err
	}
	return w.selection.Select(p)
}

// requireDocument checks the positional document argument.
func requireDocument(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(errors.ErrCodeInvalidInput, "expected exactly one document argument")
	}
	if err := errors.ValidateDocumentName(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}
