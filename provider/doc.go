// Package provider defines the canonical, backend-agnostic types for chat
// completion requests and results. The adaptive package maps these types to
// and from the gateway wire format, keeping callers decoupled from backend
// field naming and schema drift.
//
// A request flows in as [CallOptions] (ordered [Message] values with
// polymorphic [ContentPart] content, generation settings, tools). A
// synchronous call returns a [Response]; a streaming call returns a [Stream]
// that yields [StreamEvent] values in a guaranteed order: one stream-start
// first, at most one response-metadata, and exactly one finish event last.
package provider
