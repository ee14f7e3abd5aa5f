package emit

import (
	"io"
	"strings"
	"testing"
)

// readerDevice is a device fed from a fixed string.
type readerDevice struct {
	r     *strings.Reader
	syncs int
}

func newReaderDevice(s string) *readerDevice {
	return &readerDevice{r: strings.NewReader(s)}
}

func (d *readerDevice) Read(p []byte) (int, error) { return d.r.Read(p) }

func (d *readerDevice) Write(p []byte) (int, error) { return len(p), nil }

func (d *readerDevice) Sync() error {
	d.syncs++
	return nil
}

func (d *readerDevice) Close() error { return nil }

func (d *readerDevice) Name() string { return "reader" }

func TestInputStream(t *testing.T) {
	d := newReaderDevice("input data")
	in := InputFrom(d)

	got, err := io.ReadAll(in)
	if err != nil {
		t.Error(err)
		return
	}

	if string(got) != "input data" {
		t.Errorf("expected %q, got %q", "input data", got)
	}

	if err := in.Close(); err != nil {
		t.Error(err)
	}
	if d.syncs != 1 {
		t.Errorf("expected close to sync the device, syncs %v", d.syncs)
	}
}
