// Package iostat provides a profiling decorator for sink devices. It
// records the size distribution of writes reaching a device, which
// shows how well a buffer capacity coalesces small writes into few
// large ones.
package iostat

import (
	"github.com/codahale/hdrhistogram"

	"github.com/emitkit/emit/sink"
)

// maxTrackedWrite is the largest single write the histogram tracks.
const maxTrackedWrite = 1 << 20

// Profile wraps a Device and counts the writes and syncs that reach
// it, recording per-write payload sizes in an HDR histogram. Like the
// streams that feed it, a Profile is not safe for concurrent use.
type Profile struct {
	dev    sink.Device
	sizes  *hdrhistogram.Histogram
	writes int64
	syncs  int64
	bytes  int64
}

// New wraps a device in a profiling decorator.
func New(dev sink.Device) *Profile {
	return &Profile{
		dev:   dev,
		sizes: hdrhistogram.New(1, maxTrackedWrite, 3),
	}
}

// Device returns the wrapped device.
func (p *Profile) Device() sink.Device { return p.dev }

func (p *Profile) Read(b []byte) (int, error) { return p.dev.Read(b) }

func (p *Profile) Write(b []byte) (int, error) {
	n, err := p.dev.Write(b)
	if n > 0 {
		p.writes++
		p.bytes += int64(n)

		// writes beyond the tracked range still count, they just
		// saturate the histogram
		v := int64(n)
		if v > maxTrackedWrite {
			v = maxTrackedWrite
		}
		_ = p.sizes.RecordValue(v)
	}

	return n, err
}

func (p *Profile) Sync() error {
	p.syncs++
	return p.dev.Sync()
}

func (p *Profile) Close() error { return p.dev.Close() }

func (p *Profile) Name() string { return p.dev.Name() }

// Writes returns the number of write calls that reached the device.
func (p *Profile) Writes() int64 { return p.writes }

// Syncs returns the number of synchronize requests the device saw.
func (p *Profile) Syncs() int64 { return p.syncs }

// BytesWritten returns the total payload bytes delivered.
func (p *Profile) BytesWritten() int64 { return p.bytes }

// Mean returns the mean write size in bytes.
func (p *Profile) Mean() float64 { return p.sizes.Mean() }

// SizePercentile returns the write size at quantile q, where q is in
// (0, 100].
func (p *Profile) SizePercentile(q float64) int64 {
	return p.sizes.ValueAtQuantile(q)
}
