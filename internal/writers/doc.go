// Package writers turns candidate streams into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text lines, JSON/JSONL).
//   • Engine stays domain-only; runner stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
