package emit

import (
	"go.uber.org/zap"

	"github.com/emitkit/emit/sink"
)

// Direct is the pass-through policy: every write goes straight to the
// device with no coalescing.
type Direct struct {
	dev sink.Device
}

// NewDirect binds a device to a pass-through policy.
func NewDirect(dev sink.Device) *Direct {
	return &Direct{dev: dev}
}

// Device returns the bound device.
func (d *Direct) Device() sink.Device { return d.dev }

func (d *Direct) WriteBytes(p []byte) {
	devWrite(d.dev, p)
}

func (d *Direct) Flush() {
	devSync(d.dev)
}

// Stdout returns an unbuffered stream bound to standard output.
func Stdout() *Stream {
	return New(NewDirect(sink.Stdout()))
}

// Stderr returns an unbuffered stream bound to standard error.
func Stderr() *Stream {
	return New(NewDirect(sink.Stderr()))
}

// From returns an unbuffered stream bound to an arbitrary device.
func From(dev sink.Device) *Stream {
	return New(NewDirect(dev))
}

// devWrite performs a fire-and-forget device write.
func devWrite(dev sink.Device, p []byte) {
	if _, err := dev.Write(p); err != nil && logging {
		logger.Error("suppressed device write failure",
			zap.String("device", dev.Name()),
			zap.Int("bytes", len(p)),
			zap.Error(err),
		)
	}
}

// devSync performs a fire-and-forget device synchronize.
func devSync(dev sink.Device) {
	if err := dev.Sync(); err != nil && logging {
		logger.Error("suppressed device sync failure",
			zap.String("device", dev.Name()),
			zap.Error(err),
		)
	}
}
