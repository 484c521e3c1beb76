// Package app wires folio together and runs it.
//
// # Overview
//
// Run is the composition root. It registers providers in a samber/do
// container, resolves the session and hands it to the UI:
//
//	Run()
//	 ├─> config.Load()           read ~/.config/folio/config.toml
//	 ├─> logger.Open()           log file for the session
//	 ├─> catalog.NewMemoryStore  seeded store behind catalog.Source
//	 ├─> state.New()             view state controller
//	 ├─> StartRefresher()        optional periodic reload
//	 └─> ui.Run()                Bubble Tea program (blocks)
//
// # Refresh Behavior
//
// When refresh_interval (or the -refresh flag) is positive, a background
// goroutine calls Session.LoadAll at that cadence. Consecutive failures double
// the wait up to 30 seconds; a success returns it to the base interval. The
// goroutine exits with the context.
//
// # Error Handling
//
// Config, logger and catalog construction errors are fatal and returned from
// Run. Load failures at runtime are recorded in the session and shown by the
// UI; they never stop the program.
package app
