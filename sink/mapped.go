package sink

import (
	"io"
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Mapped is a fixed-size Device backed by a memory-mapped file. Writes
// advance a cursor through the mapped region and fail once the region
// is exhausted; Sync flushes the mapping back to the file.
type Mapped struct {
	m    mmap.MMap
	f    *os.File
	loc  string // location of the memory mapped file
	pos  int    // write cursor into the region
	rpos int    // read cursor into the region
}

// NewMapped will create and return a new instance of a Mapped device,
// replacing any stale file at loc.
func NewMapped(loc string, size int) (*Mapped, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot remove stale file at %v", loc)
		}
	}

	// ensure destination directory exists
	dir := path.Dir(loc)
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create directory %v", dir)
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create file at %v", loc)
	}

	if err = f.Truncate(int64(size)); err != nil {
		return nil, errors.Wrapf(err, "cannot initialize %v bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map file into memory")
	}

	return &Mapped{
		m:   m,
		f:   f,
		loc: loc,
	}, nil
}

// Pos returns the current write position inside the mapped region.
func (d *Mapped) Pos() int { return d.pos }

// Len returns the size of the mapped region.
func (d *Mapped) Len() int { return len(d.m) }

func (d *Mapped) Read(p []byte) (int, error) {
	if d.rpos >= len(d.m) {
		return 0, io.EOF
	}

	n := copy(p, d.m[d.rpos:])
	d.rpos += n
	return n, nil
}

func (d *Mapped) Write(p []byte) (int, error) {
	if d.pos+len(p) > len(d.m) {
		return 0, errors.Errorf("mapped region overflow, %v of %v bytes used", d.pos, len(d.m))
	}

	copy(d.m[d.pos:], p)
	d.pos += len(p)
	return len(p), nil
}

// Sync flushes the mapped region back to its file.
func (d *Mapped) Sync() error {
	return errors.Wrap(d.m.Flush(), "cannot flush mapping")
}

// Close unmaps the region and closes the backing file.
func (d *Mapped) Close() error {
	if err := d.m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap region")
	}

	return d.f.Close()
}

// Unmap will manually delete the memory mapping of a mapped device and
// optionally remove the backing file.
func (d *Mapped) Unmap(removefile bool) error {
	if err := d.m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap region")
	}

	if err := d.f.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(d.loc); err != nil {
			return err
		}
	}

	return nil
}

// Name returns the location of the backing file.
func (d *Mapped) Name() string { return d.loc }
