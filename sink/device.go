// Package sink provides the OS-level devices the stream layer writes
// to: file-descriptor targets, memory-mapped files and a discarding
// device.
package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Device is an open I/O target. The stream layer only ever calls Write
// and Sync; Read, Close and Name exist for the input side, owners and
// diagnostics.
type Device interface {
	io.Reader
	io.Writer

	// Sync commits any OS-buffered state for the device.
	Sync() error

	// Close releases the device.
	Close() error

	// Name returns a human-readable identifier for this device.
	Name() string
}

// FD is a Device backed by an operating system file handle. Copying an
// FD duplicates the reference to the handle, so two streams may target
// the same file.
type FD struct {
	f   *os.File
	tty bool
}

// Stdout returns a device bound to standard output.
func Stdout() *FD { return &FD{f: os.Stdout, tty: true} }

// Stderr returns a device bound to standard error.
func Stderr() *FD { return &FD{f: os.Stderr, tty: true} }

// Stdin returns a device bound to standard input.
func Stdin() *FD { return &FD{f: os.Stdin, tty: true} }

// Open returns a device reading and writing an existing file.
func Open(path string) (*FD, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open device at %v", path)
	}

	return &FD{f: f}, nil
}

// Create returns a device backed by a new (or truncated) file.
func Create(path string) (*FD, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create device at %v", path)
	}

	return &FD{f: f}, nil
}

// FromFile wraps an already open file as a device.
func FromFile(f *os.File) *FD { return &FD{f: f} }

func (d *FD) Read(p []byte) (int, error) { return d.f.Read(p) }

func (d *FD) Write(p []byte) (int, error) { return d.f.Write(p) }

// Sync flushes OS-buffered state to stable storage. Character devices
// like terminals reject fsync, so console handles report success
// without syncing.
func (d *FD) Sync() error {
	if d.tty {
		return nil
	}

	return d.f.Sync()
}

func (d *FD) Close() error { return d.f.Close() }

// Name returns the name of the underlying file.
func (d *FD) Name() string { return d.f.Name() }

// File returns the underlying handle for callers that need direct
// access.
func (d *FD) File() *os.File { return d.f }
