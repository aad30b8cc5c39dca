package document

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/errors"
)

// Open returns the store configured by cfg for the document name.
//
// For the file backend name is a file path. The memory backend seeds itself
// from the file at name and never writes it back. For Redis and Mongo, name
// is the document key.
func Open(ctx context.Context, cfg config.StoreConfig, name string) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(name)
	case config.BackendMemory:
		if err := errors.ValidateDocumentName(name); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "seed memory store")
		}
		return NewMemoryStore(string(data)), nil
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg.Redis, name)
	case config.BackendMongo:
		return NewMongoStore(ctx, cfg.Mongo, name)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
}

// Describe returns a short label for s, used in status output.
func Describe(s Store) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}
