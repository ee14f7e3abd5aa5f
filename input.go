package emit

import (
	"github.com/emitkit/emit/sink"
)

// InputStream is the minimal read-side companion to Stream. It wraps a
// readable device with no buffering and no typed reads; Close asks the
// device to synchronize pending state.
type InputStream struct {
	dev sink.Device
}

// Stdin returns an input stream bound to standard input.
func Stdin() *InputStream {
	return &InputStream{dev: sink.Stdin()}
}

// InputFrom returns an input stream bound to an arbitrary device.
func InputFrom(dev sink.Device) *InputStream {
	return &InputStream{dev: dev}
}

// Device returns the bound device.
func (in *InputStream) Device() sink.Device { return in.dev }

func (in *InputStream) Read(p []byte) (int, error) {
	return in.dev.Read(p)
}

// Close synchronizes the device's pending state. It does not close the
// underlying handle; the device owner does that.
func (in *InputStream) Close() error {
	return in.dev.Sync()
}
