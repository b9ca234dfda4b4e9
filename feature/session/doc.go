// Package session exposes the page level state of console sessions over HTTP.
//
// A browser adapter creates one session per console window and then reports
// page renders, tabs, field errors, clipboard changes and result scrolling to
// it. The toolbar and row selection of a session live in the toolbar and
// selection features.
//
// # HTTP Endpoints
//
//   - POST /sessions : Creates a session.
//   - GET /sessions/:id : Returns the session snapshot.
//   - DELETE /sessions/:id : Closes the session.
//   - POST /sessions/:id/page : Begins a full page render.
//   - POST /sessions/:id/tabs, POST /sessions/:id/tabs/:pos/toggle, GET /sessions/:id/tabs
//   - POST /sessions/:id/errors, GET /sessions/:id/errors
//   - PUT, GET, DELETE /sessions/:id/clipboard
//   - PUT /sessions/:id/pager, POST /sessions/:id/pager/:move (supports ?force=true), GET /sessions/:id/pager
package session
