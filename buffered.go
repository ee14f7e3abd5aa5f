package emit

import (
	"github.com/emitkit/emit/sink"
)

// Buffered coalesces small writes into a fixed-capacity buffer so the
// device sees fewer, larger writes. The buffer holds exactly the bytes
// written since the last flush, in order; payloads larger than the
// whole buffer bypass it after a flush so ordering is preserved.
type Buffered struct {
	dev sink.Device
	buf []byte
	pos int // index of the first free byte, 0 <= pos <= len(buf)
}

// NewBuffered binds a device to a buffering policy with the given
// capacity. A size of zero or less selects DefaultBufferSize.
func NewBuffered(dev sink.Device, size int) *Buffered {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Buffered{
		dev: dev,
		buf: make([]byte, size),
	}
}

// BufferedStdout returns a buffered stream bound to standard output.
func BufferedStdout(size int) *Stream {
	return New(NewBuffered(sink.Stdout(), size))
}

// BufferedStderr returns a buffered stream bound to standard error.
func BufferedStderr(size int) *Stream {
	return New(NewBuffered(sink.Stderr(), size))
}

// Buffer returns a buffered stream bound to an arbitrary device.
func Buffer(dev sink.Device, size int) *Stream {
	return New(NewBuffered(dev, size))
}

// Device returns the bound device.
func (b *Buffered) Device() sink.Device { return b.dev }

// Pos returns the number of unflushed bytes currently buffered.
func (b *Buffered) Pos() int { return b.pos }

// Cap returns the buffer capacity.
func (b *Buffered) Cap() int { return len(b.buf) }

// Bytes returns the unflushed region of the buffer.
func (b *Buffered) Bytes() []byte { return b.buf[:b.pos] }

// copyIn copies p into the free region of the buffer. The caller must
// have established that it fits.
func (b *Buffered) copyIn(p []byte) {
	if len(p) == 0 || len(p) > len(b.buf)-b.pos {
		panic("emit: buffered stream overrun")
	}

	copy(b.buf[b.pos:], p)
	b.pos += len(p)
}

func (b *Buffered) WriteBytes(p []byte) {
	remaining := len(b.buf) - b.pos

	switch {
	case len(p) == 0:
		// disallow empty writes
	case len(p) > len(b.buf):
		// buffered bytes must reach the device before the oversized
		// payload bypasses the buffer
		b.Flush()
		devWrite(b.dev, p)
	case remaining < len(p):
		b.Flush()
		b.copyIn(p)
	default:
		b.copyIn(p)
	}
}

// Flush writes the occupied region to the device in a single call,
// resets the cursor and asks the device to synchronize. Flushing an
// empty buffer only synchronizes.
func (b *Buffered) Flush() {
	if b.pos > len(b.buf) {
		panic("emit: buffered stream overrun")
	}

	if b.pos > 0 {
		devWrite(b.dev, b.buf[:b.pos])
		b.pos = 0
	}

	devSync(b.dev)
}
