package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	m := NoopModalHooks{}
	m.OnEditStart(ctx, `$["a"]`)
	m.OnEditCancel(ctx, `$["a"]`)
	m.OnSave(ctx, `$["a"]`, 12, time.Millisecond, nil)

	s := NoopStoreHooks{}
	s.OnRead(ctx, "file", 1024, time.Millisecond, nil)
	s.OnWrite(ctx, "redis", 1024, time.Millisecond, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Modal().(NoopModalHooks); !ok {
		t.Error("Modal() should return NoopModalHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	customModal := &testModalHooks{}
	SetModalHooks(customModal)
	if Modal() != customModal {
		t.Error("SetModalHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	Reset()
	if _, ok := Modal().(NoopModalHooks); !ok {
		t.Error("Reset() should restore NoopModalHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testModalHooks{}
	SetModalHooks(custom)
	SetModalHooks(nil)
	if Modal() != custom {
		t.Error("SetModalHooks(nil) should keep the registered hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testModalHooks{}
	SetModalHooks(custom)

	Modal().OnEditStart(context.Background(), "$")
	Modal().OnSave(context.Background(), "$", 3, time.Second, nil)

	if custom.edits != 1 || custom.saves != 1 {
		t.Errorf("edits = %d, saves = %d, want 1, 1", custom.edits, custom.saves)
	}
}

type testModalHooks struct {
	NoopModalHooks
	edits int
	saves int
}

func (h *testModalHooks) OnEditStart(context.Context, string) { h.edits++ }
func (h *testModalHooks) OnSave(context.Context, string, int, time.Duration, error) {
	h.saves++
}

type testStoreHooks struct{ NoopStoreHooks }
