// Package utils provides the low-level transport helpers shared by the
// adaptive client: JSON POST round-trips, streaming (SSE) POST requests
// with an incremental event scanner, and small generic conveniences.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [DoPostStream] together with [SSEScanner] for Server-Sent Events
// streaming, and [Ptr] for taking the address of a literal.
package utils
