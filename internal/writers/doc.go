// Package writers turns scan results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, tables, JSON/JSONL).
//   - The core packages stay domain-only; the CLI only picks a format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
