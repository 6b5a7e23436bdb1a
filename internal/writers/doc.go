// Package writers turns a finished validation report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (TSV rows, JSON documents).
//   - The scanner stays domain-only; appcore stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
