// Package action talks to the GitHub Actions runner.
//
// Handler renders slog records as workflow commands (::debug::, ::warning::,
// ::error::) so that warnings and errors are annotated in the job summary.
// WriteOutput publishes a step output through the GITHUB_OUTPUT file, falling
// back to the legacy ::set-output command when that file is not provided.
package action
