package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bjaus/boxtable"
)

const stdinPath = "-"

// loadLines reads the named file, or stdin when path is "-".
func loadLines(path string, stdin io.Reader) ([]string, error) {
	if path == stdinPath {
		return boxtable.ReadLines(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: input file %q does not exist", boxtable.ErrInputNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	return boxtable.ReadLines(f)
}
