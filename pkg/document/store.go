// Package document provides the document stores read and written by the node
// dialog, and the save transformation applied to a document.
//
// A [Store] owns the whole JSON text of one document. The dialog reads the
// full text, applies [Replace] at the selected node's path, and issues one
// whole-document write per save.
//
// Backends:
//   - [MemoryStore]: in-process, for tests and embedding
//   - [FileStore]: a file on disk, written atomically
//   - [RedisStore]: a Redis string key, for documents shared across instances
//   - [MongoStore]: a MongoDB document keyed by name
//
// Use [Open] to select a backend from configuration.
package document

import (
	"context"
	"time"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/observability"
)

// Store is the interface for document storage backends.
type Store interface {
	// Contents returns the whole document text.
	Contents(ctx context.Context) (string, error)

	// SetContents replaces the whole document text.
	SetContents(ctx context.Context, text string) error

	// Close releases backend resources.
	Close() error
}

// Named is implemented by stores that can describe where the document lives.
type Named interface {
	Name() string
}

// observe reports a read or write to the registered store hooks and wraps
// failures with ErrCodeStore.
func observe(ctx context.Context, backend string, write bool, size int, start time.Time, err error) error {
	d := time.Since(start)
	if write {
		observability.Store().OnWrite(ctx, backend, size, d, err)
	} else {
		observability.Store().OnRead(ctx, backend, size, d, err)
	}
	if err == nil {
		return nil
	}
	if errors.GetCode(err) != "" {
		return err
	}
	op := "read"
	if write {
		op = "write"
	}
	return errors.Wrap(errors.ErrCodeStore, err, "%s %s document", op, backend)
}
