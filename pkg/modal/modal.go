// Package modal implements the node content dialog: it shows the text and
// path of the selected graph node and lets the user replace the node's JSON
// value in the underlying document.
//
// The dialog reads two injected stores. A [Selection] supplies the selected
// node. A [document.Store] holds the whole document text. The dialog has no
// rendering of its own; hosts (such as the terminal UI in internal/cli) call
// [Modal.Code], [Modal.PathString] and the state transitions and draw the
// result.
//
// # States
//
// A dialog starts in [Viewing]. [Modal.Edit] switches to [Editing] with a
// draft seeded from the displayed code. [Modal.Cancel] discards the draft.
// [Modal.Save] writes the draft into the document at the node's path and
// returns to Viewing.
//
// # Replacement cache
//
// After a successful save the dialog remembers the saved node and the draft.
// While that exact node (by pointer) stays selected, [Modal.Code] shows the
// saved draft instead of reformatting the node's rows, which the selection
// store only refreshes after it re-derives the document.
package modal

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodeedit/pkg/document"
	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/node"
	"github.com/matzehuels/nodeedit/pkg/observability"
)

// State is the dialog's editing state.
type State int

const (
	// Viewing shows the formatted node read-only.
	Viewing State = iota
	// Editing holds a free-text draft.
	Editing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Selection supplies the currently selected node, or nil.
type Selection interface {
	Selected() *node.Node
}

// Options configures a Modal.
type Options struct {
	// CloseOnError returns to Viewing and drops the draft when a save
	// fails. By default the draft stays open so it can be fixed.
	CloseOnError bool

	// OnClose is called after the host closes the dialog.
	OnClose func()

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Modal is the node content dialog. It is not safe for concurrent use; hosts
// drive it from their UI event loop.
type Modal struct {
	selection Selection
	store     document.Store
	opts      Options
	logger    *log.Logger

	opened bool
	state  State
	draft  string
	err    error

	// replaced and replacedText form the replacement cache.
	replaced     *node.Node
	replacedText string
}

// New creates a closed dialog in the Viewing state.
func New(selection Selection, store document.Store, opts Options) *Modal {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Modal{
		selection: selection,
		store:     store,
		opts:      opts,
		logger:    logger,
	}
}

// Open shows the dialog.
func (m *Modal) Open() {
	m.opened = true
}

// Close hides the dialog. An open draft is abandoned without side effects.
func (m *Modal) Close() {
	if !m.opened {
		return
	}
	m.opened = false
	m.state = Viewing
	m.draft = ""
	m.err = nil
	if m.opts.OnClose != nil {
		m.opts.OnClose()
	}
}

// Opened reports whether the dialog is shown.
func (m *Modal) Opened() bool { return m.opened }

// State returns the editing state.
func (m *Modal) State() State { return m.state }

// Draft returns the in-progress text. It is empty while Viewing.
func (m *Modal) Draft() string { return m.draft }

// Err returns the error of the last failed save, cleared by the next
// transition.
func (m *Modal) Err() error { return m.err }

// Node returns the selected node, or nil.
func (m *Modal) Node() *node.Node {
	if m.selection == nil {
		return nil
	}
	return m.selection.Selected()
}

// Code returns the text displayed for the selected node: the last saved
// draft if the same node is still selected, otherwise the node's rows
// formatted from scratch.
func (m *Modal) Code() string {
	n := m.Node()
	if n != nil && n == m.replaced {
		return m.replacedText
	}
	if n == nil {
		return node.FormatRows(nil)
	}
	return node.FormatRows(n.Rows)
}

// PathString returns the selected node's path in bracket form.
func (m *Modal) PathString() string {
	if n := m.Node(); n != nil {
		return n.Path.String()
	}
	return node.Path(nil).String()
}

// Edit switches to Editing with the displayed code as the draft.
// It does nothing if already editing.
func (m *Modal) Edit(ctx context.Context) {
	if m.state == Editing {
		return
	}
	m.state = Editing
	m.draft = m.Code()
	m.err = nil
	observability.Modal().OnEditStart(ctx, m.PathString())
	m.logger.Debug("edit", "path", m.PathString())
}

// SetDraft replaces the draft. It does nothing while Viewing.
func (m *Modal) SetDraft(text string) {
	if m.state != Editing {
		return
	}
	m.draft = text
}

// Cancel discards the draft and returns to Viewing.
func (m *Modal) Cancel(ctx context.Context) {
	if m.state != Editing {
		return
	}
	m.state = Viewing
	m.draft = ""
	m.err = nil
	observability.Modal().OnEditCancel(ctx, m.PathString())
	m.logger.Debug("cancel", "path", m.PathString())
}

// Save writes the draft into the document at the selected node's path.
//
// It reads the whole document, replaces the value, writes the whole
// document back once, caches the draft for the node and returns to Viewing.
// On failure nothing is written and the error is returned and kept in Err;
// the draft stays open unless Options.CloseOnError is set.
func (m *Modal) Save(ctx context.Context) error {
	if m.state != Editing {
		return errors.New(errors.ErrCodeNotEditing, "nothing to save")
	}

	start := time.Now()
	n := m.Node()
	path := m.PathString()
	err := m.commit(ctx, n)
	observability.Modal().OnSave(ctx, path, len(m.draft), time.Since(start), err)

	if err != nil {
		m.logger.Warn("save failed", "path", path, "err", err)
		if m.opts.CloseOnError {
			m.state = Viewing
			m.draft = ""
		}
		m.err = err
		return err
	}

	m.logger.Debug("saved", "path", path, "bytes", len(m.draft), "took", time.Since(start).Round(time.Microsecond))
	m.replaced = n
	m.replacedText = m.draft
	m.state = Viewing
	m.draft = ""
	m.err = nil
	return nil
}

func (m *Modal) commit(ctx context.Context, n *node.Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeNoSelection, "no node selected")
	}
	if m.store == nil {
		return errors.New(errors.ErrCodeStore, "no document store")
	}

	contents, err := m.store.Contents(ctx)
	if err != nil {
		return err
	}
	updated, err := document.Replace([]byte(contents), n.Path, m.draft)
	if err != nil {
		return err
	}
	return m.store.SetContents(ctx, string(updated))
}
