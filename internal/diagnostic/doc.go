// Package diagnostic collects the non-fatal findings of a remapping run.
//
// Key capabilities:
//   - Warnings for input paths that were skipped
//   - Trace infos describing each processed input
//   - Errors for rejected control parameters
//   - Emission of everything collected through a slog.Logger
package diagnostic
