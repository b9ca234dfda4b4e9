// Package tabs keeps the dynamic content tabs declared by the most recent
// response. Tabs of an older response are discarded as soon as a response with
// a different id declares its first tab.
package tabs
