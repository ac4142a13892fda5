package convert

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// collectInputs gathers literal inputs, then lines from files matching
// opts.Files, falling back to opts.Stdin when neither is given.
func collectInputs(opts *Options) ([]string, error) {
	inputs := append([]string(nil), opts.Inputs...)

	for _, pattern := range opts.Files {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("file pattern %q matched no files", pattern)
		}

		for _, path := range matches {
			lines, err := readFile(path)
			if err != nil {
				return nil, err
			}
			slog.Debug("read inputs", "path", path, "count", len(lines))
			inputs = append(inputs, lines...)
		}
	}

	if len(opts.Inputs) == 0 && len(opts.Files) == 0 && opts.Stdin != nil {
		lines, err := readLines(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = append(inputs, lines...)
	}

	return inputs, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided input path
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// readLines returns the non-blank lines of r that are not "#" comments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
