// Package logging provides a minimal logging facade for the toolkit.
//
// The Logger interface wraps a subset of log/slog so applications can swap in
// their own implementation for testing or redaction policies. The toolkit's
// primitives never log on their own; the facade exists for the code that
// wires them together.
//
// # Security Considerations
//
//   - Never log keys, derived subkeys, plaintexts, or PRF outputs
//   - Use Redacted to mark attributes whose value was intentionally removed
//   - Set-hash states and ciphertexts are not secret, but treat them as
//     linkable identifiers when deciding what to retain
package logging
