package inputs

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"env-remapper/internal/casing"
	"env-remapper/internal/diagnostic"
	"env-remapper/internal/remap"
)

// Control parameter names as they appear after camel-casing.
const (
	ControlDepth      = "depth"
	ControlCase       = "case"
	ControlDeepCasing = "deepCasing"
)

var (
	errWholeNumber = validation.NewError("validation_not_whole_number", "must be a whole number")
	errBoolean     = validation.NewError("validation_not_boolean", "must be a boolean")
	errString      = validation.NewError("validation_not_string", "must be a string")
)

// rawControls holds control parameter values before validation.
type rawControls struct {
	Depth      any `json:"depth"`
	Case       any `json:"case"`
	DeepCasing any `json:"deepCasing"`
}

// Validate implements validation.Validatable.
func (r *rawControls) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Depth, validation.By(wholeNumber), validation.Min(0.0)),
		validation.Field(&r.Case, validation.By(isString), validation.In(caseNames()...).Error("must be one of "+caseList())),
		validation.Field(&r.DeepCasing, validation.By(isBool)),
	)
}

// ResolveControls applies the control parameters in values on top of base.
// Absent or empty parameters keep the base value. Invalid parameters also keep
// the base value and are reported through the returned validation.Errors,
// keyed by parameter name; the returned options are usable either way.
func ResolveControls(values map[string]any, base remap.Options) (remap.Options, error) {
	raw := rawControls{
		Depth:      values[ControlDepth],
		Case:       values[ControlCase],
		DeepCasing: values[ControlDeepCasing],
	}

	err := raw.Validate()

	var invalid validation.Errors
	if err != nil && !errors.As(err, &invalid) {
		return base, err
	}

	opts := base

	if _, bad := invalid[ControlDepth]; !bad {
		if f, ok := raw.Depth.(float64); ok {
			opts.Depth = int(f)
		}
	}

	if _, bad := invalid[ControlCase]; !bad {
		if s, ok := raw.Case.(string); ok && s != "" {
			opts.Case = casing.Mode(s)
		}
	}

	if _, bad := invalid[ControlDeepCasing]; !bad {
		if b, ok := raw.DeepCasing.(bool); ok {
			opts.DeepCasing = b
		}
	}

	if len(invalid) > 0 {
		return opts, invalid
	}

	return opts, nil
}

func caseNames() []any {
	modes := casing.Modes()
	names := make([]any, len(modes))

	for i, m := range modes {
		names[i] = string(m)
	}

	return names
}

func caseList() string {
	var b strings.Builder

	for i, m := range casing.Modes() {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(string(m))
	}

	return b.String()
}

func wholeNumber(v any) error {
	switch n := v.(type) {
	case nil:
		return nil
	case string:
		if n == "" {
			return nil
		}
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return nil
		}
	}

	return errWholeNumber
}

func isBool(v any) error {
	switch b := v.(type) {
	case nil, bool:
		return nil
	case string:
		if b == "" {
			return nil
		}
	}

	return errBoolean
}

func isString(v any) error {
	switch v.(type) {
	case nil, string:
		return nil
	}

	return errString
}

// CodeInvalidControl marks a rejected control parameter.
const CodeInvalidControl = "invalid_control"

// Report records each invalid control parameter in err as an error
// diagnostic, ordered by parameter name. Other errors are recorded as is.
func Report(err error, diags *diagnostic.Diagnostics) {
	if err == nil {
		return
	}

	var invalid validation.Errors
	if !errors.As(err, &invalid) {
		diags.AddError(CodeInvalidControl, err.Error(), "")
		return
	}

	for _, name := range slices.Sorted(maps.Keys(invalid)) {
		diags.AddError(CodeInvalidControl, invalid[name].Error()+"; using the default value instead", name)
	}
}
