// Package state provides the view state controller for the folio UI.
//
// # Overview
//
// A Session sits between the catalog and the presentation layer. It holds the
// UI-facing state (loaded books, search text, category, selected book, loading
// flag, error) and derives the display list from it. The UI forwards user
// actions into the Session and renders the Snapshots it publishes.
//
// # Architecture
//
//	UI (Bubble Tea):                Session:                 catalog.Source:
//	┌──────────────────┐           ┌──────────────────┐     ┌──────────────┐
//	│ tea.Cmd          │──────────→│ LoadAll()        │────→│ FetchAll()   │
//	│   (goroutine)    │           │ ToggleFavorite() │────→│ Toggle...()  │
//	│                  │←──────────│ publish Snapshot │     └──────────────┘
//	│ Update(snapshot) │ Subscribe └──────────────────┘
//	└──────────────────┘
//
// # Derived State
//
// Snapshot.Display is never stored. Every snapshot recomputes it with
// catalog.Filter from Books, Query, Category and FavoritesOnly, so a change to
// any of them (or to Books through a load or a toggle) is reflected at once.
// Favorites and Categories are derived from Books the same way.
//
// # Concurrency Model
//
// The Session mutex guards the view state and is never held while the catalog
// is being called. Several loads and toggles may be in flight together and
// their results are applied in completion order, with two exceptions:
//
//   - A LoadAll result never reverts a newer toggle. Each toggle is journalled
//     with a sequence number; a load records the sequence current at its start
//     and re-applies every newer journal entry before publishing. The journal
//     is pruned once no in-flight load can need an entry.
//   - A LoadByID result only lands if its id is still the selected id.
//
// Toggles are serialized, so sequence numbers match the order the catalog
// applied them in.
//
// # Cancellation
//
// A load whose context is cancelled is discarded: the loading flag is reset
// and no error is recorded. Reads never mutate the catalog, so nothing needs
// rolling back. A deadline that expires is a load failure.
//
// # Error Propagation
//
// Failures end up in Snapshot.Err as catalog errors (catalog.ErrNotFound or
// catalog.ErrLoadFailure). Loading is reset on every completion. Only
// ClearError dismisses an error, and a successful LoadAll replaces it.
//
// # Observers
//
// Subscribe registers a callback that receives published Snapshots in order.
// A snapshot overtaken by a newer one before delivery is skipped, so the last
// one delivered is always current. Callbacks run on the goroutine that made
// the change; they may call Snapshot but must not call mutating methods.
package state
