package diagnostic

import (
	"context"
	"log/slog"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Path identifies the input path this relates to (if any).
	Path string
	// Attrs carries structured details for logging.
	Attrs []slog.Attr
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Level maps the severity onto a slog level.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, path string, attrs ...slog.Attr) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, path, attrs))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, path string, attrs ...slog.Attr) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, path, attrs))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, path string, attrs ...slog.Attr) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, path, attrs))
}

func newDiagnostic(sev Severity, code, message, path string, attrs []slog.Attr) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Path:     path,
		Attrs:    attrs,
	}
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Log emits every diagnostic through logger: infos first, then warnings, then
// errors, each group in the order it was recorded.
func (d *Diagnostics) Log(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		return
	}

	for _, group := range [][]Diagnostic{d.Infos, d.Warnings, d.Errors} {
		for _, diag := range group {
			diag.Log(ctx, logger)
		}
	}
}

// Log emits the diagnostic through logger at its severity's level.
func (d Diagnostic) Log(ctx context.Context, logger *slog.Logger) {
	attrs := make([]slog.Attr, 0, len(d.Attrs)+2)
	if d.Code != "" {
		attrs = append(attrs, slog.String("code", d.Code))
	}

	if d.Path != "" {
		attrs = append(attrs, slog.String("path", d.Path))
	}

	attrs = append(attrs, d.Attrs...)

	logger.LogAttrs(ctx, d.Severity.Level(), d.Message, attrs...)
}
