// Package har handles reading and writing HAR capture files.
package har

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Load reads an entire HAR file into memory and verifies that it is valid JSON.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("har.Load: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("har.Load: %s: invalid JSON", path)
	}
	return data, nil
}

// Write emits the document as a single compact line. An empty path writes to
// stdout with a trailing newline; otherwise the file at path is overwritten,
// creating parent directories as needed.
func Write(doc []byte, path string) error {
	out := pretty.Ugly(doc)
	if path == "" {
		if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
			return fmt.Errorf("har.Write: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("har.Write: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("har.Write: %w", err)
	}
	return nil
}
