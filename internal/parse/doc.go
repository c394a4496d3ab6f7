// Package parse normalizes model-produced JSON. Backends occasionally emit
// tool-call arguments with trailing commas, single quotes or missing braces;
// this package repairs such payloads instead of failing the call.
package parse
