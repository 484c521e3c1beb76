package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func texts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(texts(got), tt.expected) {
				t.Errorf("Read() = %v, want %v", texts(got), tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLevel  slog.Level
		wantParsed bool
	}{
		{
			name:       "text info",
			input:      `time=2026-01-02T10:00:00.000Z level=INFO msg="catalog loaded" count=6`,
			wantLevel:  slog.LevelInfo,
			wantParsed: true,
		},
		{
			name:       "text warn",
			input:      `time=2026-01-02T10:00:00.000Z level=WARN msg="load all failed"`,
			wantLevel:  slog.LevelWarn,
			wantParsed: true,
		},
		{
			name:       "json error",
			input:      `{"time":"2026-01-02T10:00:00Z","level":"ERROR","msg":"boom"}`,
			wantLevel:  slog.LevelError,
			wantParsed: true,
		},
		{
			name:       "json debug",
			input:      `{"level":"DEBUG","msg":"catalog fetch all"}`,
			wantLevel:  slog.LevelDebug,
			wantParsed: true,
		},
		{
			name:       "offset level",
			input:      `level=INFO+2 msg=odd`,
			wantLevel:  slog.LevelInfo + 2,
			wantParsed: true,
		},
		{
			name:       "plain text",
			input:      "panic: something broke",
			wantLevel:  slog.LevelInfo,
			wantParsed: false,
		},
		{
			name:       "broken json",
			input:      `{"level":`,
			wantLevel:  slog.LevelInfo,
			wantParsed: false,
		},
		{
			name:       "unknown level",
			input:      "level=LOUD msg=x",
			wantLevel:  slog.LevelInfo,
			wantParsed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Text != tt.input {
				t.Errorf("Parse().Text = %q, want %q", got.Text, tt.input)
			}
			if got.Level != tt.wantLevel || got.Parsed != tt.wantParsed {
				t.Errorf("Parse() = (%v, %v), want (%v, %v)", got.Level, got.Parsed, tt.wantLevel, tt.wantParsed)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	lines := []Line{
		Parse("level=DEBUG msg=a"),
		Parse("level=INFO msg=b"),
		Parse("goroutine 1 [running]:"),
		Parse("level=ERROR msg=c"),
	}

	got := texts(AtLeast(lines, slog.LevelWarn))
	want := []string{"goroutine 1 [running]:", "level=ERROR msg=c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AtLeast() = %v, want %v", got, want)
	}

	if all := AtLeast(lines, slog.LevelDebug); len(all) != len(lines) {
		t.Errorf("AtLeast(debug) kept %d lines, want %d", len(all), len(lines))
	}
}
