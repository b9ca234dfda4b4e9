// Package toolbar keeps the toolbar of a console session in sync with the
// page fragments the browser renders.
//
// The browser adapter reports ajax registrations and per-response toolbar
// items, then posts every rendered response together with the buttons its
// content and toolbar regions declare and the existence of registered
// elements. The session reconciles these against the displayed toolbar and
// answers with the new state, whether it changed, and the add, remove and
// move actions that lead there.
//
// # HTTP Endpoints
//
//   - GET /sessions/:id/toolbar : Returns state, registrations and pending items.
//   - POST /sessions/:id/toolbar/registrations : Records ajax registrations.
//   - POST /sessions/:id/toolbar/items : Declares toolbar items for a response.
//   - POST /sessions/:id/toolbar/responses : Reconciles a rendered response (409 if stale).
package toolbar
