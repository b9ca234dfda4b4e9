// Package console implements the page controller of the admin console.
//
// A Session owns everything one browser page accumulates between two full
// page renders: the displayed toolbar, the ajax registrations, the toolbar
// items and tabs declared by the latest response, field errors, the content
// clipboard, and the selection and scroller of the result table. The UI is
// reached only through the Adapter interface.
//
// Responses are applied exactly once and in request order. Complete rejects
// a response whose request id is not newer than the last applied one with
// ErrStaleResponse.
//
// A Registry hosts many sessions for the HTTP server. Calls on the same
// session are serialized and every mutation is persisted through a
// snapshot.Store when one is configured.
package console
