//go:build integration

package document

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/nodeedit/pkg/config"
)

func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("NODEEDIT_REDIS_ADDR")
	if addr == "" {
		t.Skip("NODEEDIT_REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := NewRedisStore(ctx, config.RedisConfig{Addr: addr, Prefix: "nodeedit-test:"}, "doc")
	if err != nil {
		t.Fatalf("NewRedisStore() error: %v", err)
	}
	defer s.Close()

	if err := s.SetContents(ctx, `{"a":{"b":1}}`); err != nil {
		t.Fatalf("SetContents() error: %v", err)
	}
	got, err := s.Contents(ctx)
	if err != nil {
		t.Fatalf("Contents() error: %v", err)
	}
	if got != `{"a":{"b":1}}` {
		t.Errorf("Contents() = %q", got)
	}
	if s.Name() != "nodeedit-test:doc" {
		t.Errorf("Name() = %q", s.Name())
	}
}
