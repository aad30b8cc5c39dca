package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.0.0", "abc123", "2026-01-02"
	defer func() { Version, Commit, Date = "dev", "none", "unknown" }()

	want := "version: v1.0.0\ncommit: abc123\nbuilt: 2026-01-02"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version {{.Version}}\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: none") {
		t.Errorf("Template() = %q, want default commit", got)
	}
}

func TestKeyVals(t *testing.T) {
	kv := KeyVals()
	if len(kv)%2 != 0 {
		t.Fatalf("KeyVals() has odd length %d", len(kv))
	}
	if kv[0] != "version" || kv[1] != Version {
		t.Errorf("KeyVals() = %v", kv)
	}
}
