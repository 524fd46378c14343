package action

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Environment variables set by the runner.
const (
	EnvOutput  = "GITHUB_OUTPUT"
	EnvActions = "GITHUB_ACTIONS"
)

// WriteOutput appends name=value to the output file using a heredoc block.
// When file is empty the legacy set-output command is written to stdout.
func WriteOutput(file string, stdout io.Writer, name, value string) error {
	if file == "" {
		_, err := fmt.Fprintf(stdout, "::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return err
	}

	delim, err := delimiter(name, value)
	if err != nil {
		return err
	}

	// #nosec G304 -- output file path is provided by the runner.
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file %q: %w", file, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delim, value, delim); err != nil {
		return fmt.Errorf("write output %q: %w", name, err)
	}

	return nil
}

// delimiter returns a random heredoc delimiter absent from name and value.
func delimiter(name, value string) (string, error) {
	b := make([]byte, 16)

	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate output delimiter: %w", err)
	}

	delim := "ghadelimiter_" + hex.EncodeToString(b)
	if strings.Contains(name, delim) || strings.Contains(value, delim) {
		return "", fmt.Errorf("output %q contains its delimiter", name)
	}

	return delim, nil
}
