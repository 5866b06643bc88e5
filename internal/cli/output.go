package cli

import (
	"io"
	"os"
)

// writeFile writes data to path, or to stdout when path is empty.
func writeFile(stdout io.Writer, data []byte, path string) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
