package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Line is one log record as read from disk.
type Line struct {
	Text  string
	Level slog.Level
	// Parsed is false when no level could be found on the line.
	Parsed bool
}

// Read returns at most maxLines from the end of the file at path, with the
// level of each line parsed. A maxLines of zero or less reads every line.
// A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []Line
		for scanner.Scan() {
			all = append(all, Parse(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]Line, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := range count {
		lines[i] = Parse(ring[(start+i)%maxLines])
	}
	return lines, nil
}

// Parse extracts the level from a slog text or JSON record.
func Parse(text string) Line {
	line := Line{Text: text, Level: slog.LevelInfo}
	trimmed := strings.TrimSpace(text)

	var raw string
	if strings.HasPrefix(trimmed, "{") {
		var rec struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(trimmed), &rec); err == nil {
			raw = rec.Level
		}
	} else if _, after, ok := strings.Cut(trimmed, "level="); ok {
		raw, _, _ = strings.Cut(after, " ")
	}

	if raw == "" {
		return line
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return line
	}
	line.Level = lvl
	line.Parsed = true
	return line
}

// AtLeast keeps the lines at or above min. Unparsed lines are always kept.
func AtLeast(lines []Line, min slog.Level) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if !l.Parsed || l.Level >= min {
			out = append(out, l)
		}
	}
	return out
}
