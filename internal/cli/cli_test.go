package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/observability"
)

const testDocument = `{"id": 7, "customer": [{"name": "Ada", "vip": true}], "total": 12.50}`

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.out = &out

	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.toml")))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDocument(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readJSON(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("%s is not valid JSON: %v\n%s", path, err, data)
	}
	return v
}

func TestSetCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, err := runCLI(t, "set", path, "--path", `$["customer"][0]`, "--value", `{"name": "Grace"}`)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(out, "Saved") {
		t.Errorf("output = %q, want success message", out)
	}

	var want any
	_ = json.Unmarshal([]byte(`{"id": 7, "customer": [{"name": "Grace"}], "total": 12.50}`), &want)
	if got := readJSON(t, path); !reflect.DeepEqual(got, want) {
		t.Errorf("document = %v, want %v", got, want)
	}
}

func TestSetCommandFromFile(t *testing.T) {
	path := writeDocument(t, testDocument)
	value := filepath.Join(t.TempDir(), "value.json")
	if err := os.WriteFile(value, []byte("99"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "set", path, "-p", `$["id"]`, "-f", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	doc := readJSON(t, path).(map[string]any)
	if doc["id"] != float64(99) {
		t.Errorf("id = %v, want 99", doc["id"])
	}
}

func TestSetCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"invalid draft", []string{"--path", `$["id"]`, "--value", "{"}, errors.ErrCodeInvalidDraft},
		{"unknown node", []string{"--path", `$["nope"]`, "--value", "1"}, errors.ErrCodePathNotFound},
		{"bad path", []string{"--path", `customer`, "--value", "1"}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDocument(t, testDocument)
			_, err := runCLI(t, append([]string{"set", path}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("set error = %v, want %s", err, tt.code)
			}
			data, _ := os.ReadFile(path)
			if string(data) != testDocument {
				t.Errorf("document changed after failed save:\n%s", data)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, err := runCLI(t, "show", path, "--path", `$["customer"][0]`, "--raw")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	want := "{\n  \"name\": \"Ada\",\n  \"vip\": true\n}\n"
	if out != want {
		t.Errorf("show --raw = %q, want %q", out, want)
	}

	out, err = runCLI(t, "show", path, "--path", `$["customer"][0]`)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "/customer/0") {
		t.Errorf("show = %q, want the JSON pointer", out)
	}

	out, err = runCLI(t, "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "$") || !strings.Contains(out, `"total": 12.50`) {
		t.Errorf("show = %q, want root path and fields", out)
	}
}

func TestNodesCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, err := runCLI(t, "nodes", path, "--paths")
	if err != nil {
		t.Fatalf("nodes: %v", err)
	}
	want := "$\n$[\"customer\"][0]\n"
	if out != want {
		t.Errorf("nodes --paths = %q, want %q", out, want)
	}

	out, err = runCLI(t, "nodes", path)
	if err != nil {
		t.Fatalf("nodes: %v", err)
	}
	if !strings.Contains(out, "2 nodes") {
		t.Errorf("nodes output = %q, want stats", out)
	}
}

func TestMemoryBackendDoesNotWrite(t *testing.T) {
	path := writeDocument(t, testDocument)

	out, err := runCLI(t, "--backend", "memory", "set", path, "--path", `$["id"]`, "--value", "1")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(out, "not persisted") {
		t.Errorf("output = %q, want memory warning", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != testDocument {
		t.Error("memory backend wrote the file")
	}
}

func TestUnknownBackend(t *testing.T) {
	path := writeDocument(t, testDocument)
	_, err := runCLI(t, "--backend", "tape", "nodes", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestConfigCommands(t *testing.T) {
	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `backend = "file"`) {
		t.Errorf("config show = %q, want default backend", out)
	}
}

func TestConfigInit(t *testing.T) {
	t.Cleanup(observability.Reset)
	path := filepath.Join(t.TempDir(), "nodeedit", "config.toml")

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.out = &out
	root := c.RootCommand()
	root.SetArgs([]string{"config", "init", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out.Reset()
	root = c.RootCommand()
	root.SetArgs([]string{"config", "path", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("config path = %q, want %q", out.String(), path)
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.New(errors.ErrCodeInvalidDraft, "draft is not valid JSON"))

	out := buf.String()
	if !strings.Contains(out, "draft is not valid JSON") || !strings.Contains(out, "INVALID_DRAFT") {
		t.Errorf("ReportError() = %q", out)
	}
}
