// Package paths flattens a schema tree into a table of leaf addresses.
//
// Build walks a schema.Node depth first and records one entry per primitive
// leaf. Entries are dotted paths ("server.tls.enabled") paired with a
// schema.Scalar type hint. Array elements contribute the wildcard segment "#",
// so a list of objects yields paths such as "listeners.#.port".
//
// The resulting Map keeps first-registration order and is never mutated after
// Build returns, so it may be shared between goroutines.
//
// Build fails with a *SchemaError when the schema is ambiguous:
//   - a union mixes object-shaped and primitive branches,
//   - a union's primitive branches disagree on the type hint,
//   - two branches register different hints for the same path,
//   - a literal set mixes values of different primitive kinds.
package paths
