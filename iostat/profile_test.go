package iostat

import (
	"strings"
	"testing"

	"github.com/emitkit/emit"
	"github.com/emitkit/emit/sink"
)

func TestProfileCounters(t *testing.T) {
	p := New(sink.Discard{})

	sizes := []int{1, 100, 1000}
	total := int64(0)
	for _, n := range sizes {
		if _, err := p.Write(make([]byte, n)); err != nil {
			t.Error(err)
			return
		}
		total += int64(n)
	}

	if p.Writes() != 3 {
		t.Errorf("expected 3 writes, got %v", p.Writes())
	}
	if p.BytesWritten() != total {
		t.Errorf("expected %v bytes, got %v", total, p.BytesWritten())
	}

	if err := p.Sync(); err != nil {
		t.Error(err)
	}
	if err := p.Sync(); err != nil {
		t.Error(err)
	}
	if p.Syncs() != 2 {
		t.Errorf("expected 2 syncs, got %v", p.Syncs())
	}

	// HDR histograms trade exactness for bounded size, so compare
	// against a close lower bound rather than the exact value
	if max := p.SizePercentile(100); max < 990 {
		t.Errorf("expected the largest tracked write to be close to 1000, got %v", max)
	}
	if mean := p.Mean(); mean < 300 || mean > 450 {
		t.Errorf("expected a mean near 367, got %v", mean)
	}
}

func TestProfileEmptyWriteNotRecorded(t *testing.T) {
	p := New(sink.Discard{})

	if _, err := p.Write(nil); err != nil {
		t.Error(err)
		return
	}

	if p.Writes() != 0 {
		t.Errorf("expected empty writes to go unrecorded, got %v", p.Writes())
	}
}

func TestProfileUnderBufferedStream(t *testing.T) {
	p := New(sink.Discard{})
	s := emit.Buffer(p, 64)

	for i := 0; i < 10; i++ {
		s.Text("ab")
	}
	s.Flush()

	if p.Writes() != 1 {
		t.Errorf("expected the buffer to coalesce into 1 device write, got %v", p.Writes())
	}
	if p.BytesWritten() != 20 {
		t.Errorf("expected 20 bytes delivered, got %v", p.BytesWritten())
	}
	if p.SizePercentile(100) != 20 {
		t.Errorf("expected a single 20-byte write, got %v", p.SizePercentile(100))
	}
}

func TestProfileName(t *testing.T) {
	p := New(sink.Discard{})

	if !strings.Contains(p.Name(), "discard") {
		t.Errorf("expected the profile to report the wrapped device name, got %q", p.Name())
	}
}
