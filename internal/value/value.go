// Package value infers typed values from raw string inputs.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"env-remapper/internal/tree"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// Parse returns raw decoded as strict JSON when raw is a string holding exactly
// one JSON value. Any string that fails to decode is returned unchanged, as is
// every non-string input.
func Parse(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}

	v, err := Decode(s)
	if err != nil {
		return s
	}

	return v
}

// Decode decodes a single JSON document. Objects become *tree.Object with the
// source key order, arrays become []any and numbers float64.
func Decode(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := tree.New()

		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}

			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return obj, nil
	case '[':
		arr := []any{}

		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}
