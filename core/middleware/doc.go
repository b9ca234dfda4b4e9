// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: Validates the X-API-Key header (or api_key query parameter)
//     against the configured key. An empty key leaves the API open.
//   - rayid: Assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context locals and the X-Ray-ID response header.
//
// Register rayid first so that every later log line can carry the id.
package middleware
