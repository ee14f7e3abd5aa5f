package emit

import (
	"strconv"
	"unicode/utf8"
)

// convBufferSize is the size of the stack buffer used for numeric and
// pointer to text conversions.
const convBufferSize = 40

var newline = []byte{'\n'}

// Writer is the write/flush capability behind the formatting layer.
// Implementations decide the buffering policy; all of them are
// fire-and-forget, suppressed device failures are reported through the
// package logger.
type Writer interface {
	// WriteBytes forwards p toward the underlying device.
	WriteBytes(p []byte)

	// Flush pushes any policy-held bytes to the device and asks it to
	// synchronize.
	Flush()
}

// Token selects special-case behavior in a write chain.
type Token uint8

// values for Token
const (
	// TokenFlush flushes the stream without emitting any bytes.
	TokenFlush Token = iota

	// TokenEndl writes a single newline byte and then flushes.
	TokenEndl
)

// Stream is a chainable formatting front end over a Writer policy.
// Every method returns the stream itself so calls can be chained.
type Stream struct {
	w Writer
}

// New wraps a write/flush policy in a formatting stream.
func New(w Writer) *Stream {
	return &Stream{w: w}
}

// Writer returns the policy this stream formats into.
func (s *Stream) Writer() Writer { return s.w }

// Write forwards a raw byte span to the policy.
func (s *Stream) Write(p []byte) *Stream {
	s.w.WriteBytes(p)
	return s
}

// Flush forwards a flush request to the policy.
func (s *Stream) Flush() *Stream {
	s.w.Flush()
	return s
}

// Tok dispatches a sentinel token.
func (s *Stream) Tok(t Token) *Stream {
	if t == TokenEndl {
		s.w.WriteBytes(newline)
	}

	s.w.Flush()
	return s
}

// Rune writes a single character as UTF-8 text.
func (s *Stream) Rune(r rune) *Stream {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return s.text(buf[:n])
}

// Int writes the minimal decimal representation of a signed integer.
func (s *Stream) Int(v int64) *Stream {
	var buf [convBufferSize]byte
	return s.text(strconv.AppendInt(buf[:0], v, 10))
}

// Uint writes the minimal decimal representation of an unsigned integer.
func (s *Stream) Uint(v uint64) *Stream {
	var buf [convBufferSize]byte
	return s.text(strconv.AppendUint(buf[:0], v, 10))
}

// Float writes the shortest decimal representation that round-trips the
// given value.
func (s *Stream) Float(v float64) *Stream {
	var buf [convBufferSize]byte
	return s.text(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
}

// Ptr writes an address as lowercase hexadecimal text with no prefix.
// The pointed-to memory is never touched.
func (s *Stream) Ptr(p uintptr) *Stream {
	var buf [convBufferSize]byte
	return s.text(strconv.AppendUint(buf[:0], uint64(p), 16))
}

// Text writes byte-oriented text. Empty strings write nothing.
func (s *Stream) Text(str string) *Stream {
	if str != "" {
		s.w.WriteBytes([]byte(str))
	}

	return s
}

// Text16 normalizes UTF-16 encoded text to UTF-8 and writes it. A
// failed or empty conversion writes nothing.
func (s *Stream) Text16(u []uint16) *Stream {
	return s.text(utf16ToUTF8(u))
}

// text writes a conversion result, skipping empty ones.
func (s *Stream) text(p []byte) *Stream {
	if len(p) > 0 {
		s.w.WriteBytes(p)
	}

	return s
}
