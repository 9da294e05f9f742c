package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeOutput runs write against standard output when filename is empty,
// or otherwise against a temporary file that replaces filename only once
// write has succeeded. An existing file keeps its permissions. It returns
// the number of bytes written.
func writeOutput(filename string, stdout io.Writer, write func(io.Writer) error) (int64, error) {
	if filename == "" {
		cw := &countingWriter{w: stdout}
		err := write(cw)
		return cw.n, err
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(filename); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return 0, fmt.Errorf("failed to create output file for %s: %w", filename, err)
	}
	tmpName := f.Name()
	committed := false
	defer func() {
		if !committed {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	cw := &countingWriter{w: f}
	if err := write(cw); err != nil {
		return cw.n, fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := f.Chmod(mode); err != nil {
		return cw.n, fmt.Errorf("failed to set mode of %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		committed = true
		return cw.n, fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	committed = true

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
