// Package report writes ranked frequency lists to their destination.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Destination is a buffered stream for the report. Close flushes it and
// releases the underlying resource.
type Destination interface {
	io.Writer
	Close() error
}

type stdoutDestination struct {
	*bufio.Writer
}

// Close flushes buffered output. Standard output itself stays open.
func (d stdoutDestination) Close() error {
	return d.Flush()
}

// Stdout returns a destination writing to w, normally os.Stdout.
func Stdout(w io.Writer) Destination {
	return stdoutDestination{Writer: bufio.NewWriter(w)}
}

type fileDestination struct {
	*bufio.Writer
	file *os.File
}

func (d fileDestination) Close() error {
	ferr := d.Flush()
	cerr := d.file.Close()
	if ferr != nil {
		return fmt.Errorf("failed to flush %s: %w", d.file.Name(), ferr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close %s: %w", d.file.Name(), cerr)
	}
	return nil
}

// CreateFile creates or truncates path and returns it as a destination.
func CreateFile(path string) (Destination, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return fileDestination{Writer: bufio.NewWriter(file), file: file}, nil
}

// Open picks the destination for path: standard output for "" or "-", a file
// otherwise.
func Open(path string, stdout io.Writer) (Destination, error) {
	if path == "" || path == "-" {
		return Stdout(stdout), nil
	}
	return CreateFile(path)
}
