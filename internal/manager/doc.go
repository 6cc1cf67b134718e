// Package manager dispatches forecast requests to the loaded models. It is
// structured into small files by concern:
//
//   - manager.go: Manager type, constructor, readiness.
//   - errors.go: error types and helpers (IsInvalidSelector, IsMissingField).
//   - predict.go: selector normalization and the PredictYear/PredictDate entry points.
//
// The HTTP layer and the CLI share this package so both produce identical
// envelopes for the same input.
package manager
