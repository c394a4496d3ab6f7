// Package observability provides a lightweight tracing and structured
// logging abstraction carried through context.Context. The adaptive client
// and the transport helpers emit span events and leveled log records through
// it; the default implementation routes everything to log/slog, so no
// external observability dependency is required.
package observability
