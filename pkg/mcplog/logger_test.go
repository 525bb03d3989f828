package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestSanitizeParams(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		wantKeys map[string]bool
		wantSkip map[string]bool
	}{
		{
			name:     "nil map returns empty",
			input:    nil,
			wantKeys: map[string]bool{},
		},
		{
			name:     "short string passes through",
			input:    map[string]any{"category": "basic"},
			wantKeys: map[string]bool{"category": true},
		},
		{
			name: "long string replaced with _len key",
			input: map[string]any{
				"topic": string(make([]byte, 200)),
			},
			wantKeys: map[string]bool{"topic_len": true},
			wantSkip: map[string]bool{"topic": true},
		},
		{
			name: "bool and nil pass through",
			input: map[string]any{
				"force": true,
				"extra": nil,
			},
			wantKeys: map[string]bool{"force": true, "extra": true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := SanitizeParams(tc.input)
			for k := range tc.wantKeys {
				if _, ok := out[k]; !ok {
					t.Errorf("expected key %q in output", k)
				}
			}
			for k := range tc.wantSkip {
				if _, ok := out[k]; ok {
					t.Errorf("unexpected key %q in output", k)
				}
			}
		})
	}
}

func TestResponseBytesNil(t *testing.T) {
	if got := ResponseBytes(nil); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestLoggerWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	entries := []Entry{
		{Ts: time.Now().UTC().Format(time.RFC3339), Tool: "build_resource_index", Params: map[string]any{}, DurationMs: 12, ResponseBytes: 90},
		{Ts: time.Now().UTC().Format(time.RFC3339), Tool: "query_component", Params: map[string]any{"name": "yb-button"}, DurationMs: 3, ResponseBytes: 640},
	}

	for _, e := range entries {
		if err := logger.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var got []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got = append(got, e)
	}

	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	if got[1].Tool != "query_component" {
		t.Errorf("tool = %q, want query_component", got[1].Tool)
	}
}

func TestNilPathDisablesLogger(t *testing.T) {
	logger, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger != nil {
		t.Fatal("expected nil logger for empty path")
	}
}

func TestConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = logger.Write(Entry{Tool: "get_all_components"})
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 20 {
		t.Errorf("got %d lines, want 20", lines)
	}
}
