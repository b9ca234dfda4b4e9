// Package utils provides small conversion helpers for request parameters,
// such as route indices and query flags like ?force=true.
package utils
