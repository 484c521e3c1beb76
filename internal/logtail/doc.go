// Package logtail reads the tail of folio's log file for the log view.
//
// # Reading Log Files
//
// Read keeps a ring buffer of the last maxLines lines while scanning the file
// once, so memory stays O(maxLines) regardless of file size. Lines come back
// in chronological order.
//
//	lines, err := logtail.Read(cfg.LogPath, 400)
//
// # Levels
//
// Each line is parsed for the level slog wrote into it, either the
// level=INFO attribute of the text handler or the "level" key of the JSON
// handler. Lines without a recognisable level (panics, stray output) are kept
// with Parsed set to false, and AtLeast never filters them out.
//
// # Error Handling
//
// Read returns nil, nil for a missing file, since the log is only created
// once the first record is written. Other errors are returned wrapped.
package logtail
