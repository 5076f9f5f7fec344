package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"

	terrors "github.com/matzehuels/treetop/pkg/errors"
	"github.com/matzehuels/treetop/pkg/forest"
)

// readInput returns the bytes of the grid at path and a label for logs.
// The path "-" reads from stdin.
func readInput(stdin io.Reader, path string) ([]byte, string, error) {
	if err := terrors.ValidateInputPath(path); err != nil {
		return nil, "", err
	}

	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", terrors.Wrap(terrors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, "stdin", nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", terrors.Wrap(terrors.ErrCodeFileNotFound, err, "grid file %s", path)
	}
	if err != nil {
		return nil, "", terrors.Wrap(terrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, path, nil
}

// loadGrid reads and parses the grid at path.
func loadGrid(stdin io.Reader, path string) (forest.Grid, error) {
	data, _, err := readInput(stdin, path)
	if err != nil {
		return nil, err
	}
	return forest.Parse(string(data))
}
