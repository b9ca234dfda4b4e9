// Package selection exposes the row selection of a console session's result
// table over HTTP.
//
// The browser materializes one page of an externally paginated result at a
// time and forwards clicks by page index. The selection survives page
// changes. Shift ranges whose anchor lies on another page are resolved
// against the optional "result" key list of the click, otherwise they
// degrade to selecting the clicked row.
//
// Every response carries the highlight state of the rows on the current
// page, with rows sharing a key reported once.
//
// # HTTP Endpoints
//
//   - GET, DELETE /sessions/:id/selection
//   - PUT /sessions/:id/selection/page : Materializes a page {offset, keys}.
//   - POST /sessions/:id/selection/click : {page_index, shift, ctrl, result}.
//   - POST /sessions/:id/selection/rows/:index : Adds one row.
//   - POST /sessions/:id/selection/all-on-page
//   - POST /sessions/:id/selection/all : {keys, prefix}.
package selection
