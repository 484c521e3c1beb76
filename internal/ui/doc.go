// Package ui provides the terminal user interface for folio.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds presentation state only: the
// active view, cursors, search boxes and the last state.Snapshot received.
// Everything the user can change about the catalog (query, category,
// favorites) lives in the session behind the Controller interface, and the
// model renders whatever snapshot the session last published.
//
// # Data Flow
//
//  1. Run subscribes to the session and forwards every snapshot to the
//     program as a snapshotMsg.
//  2. Key presses become commands (commands.go) that call the session on
//     their own goroutine. Update never calls the session directly because
//     the subscriber blocks until Update accepts the snapshot.
//  3. Setter commands for the same field are ordered by a sequence number so
//     fast typing cannot reach the session out of order.
//
// # Views
//
//   - Welcome: logo and catalog status
//   - Catalog: category chips, search box and the filtered book list
//   - Book: detail of one book loaded through LoadByID
//   - Favorites: favorite books with their own search box
//   - Logs: tail of the folio log file, filterable by level
//
// # Key Bindings
//
// See keys.go; ? shows the full list in the app.
package ui
