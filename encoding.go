package emit

import (
	"golang.org/x/text/encoding/unicode"
)

// utf16Encoding decodes native-endian UTF-16 without consuming a BOM,
// so stray byte-order marks survive round trips.
var utf16Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// utf16ToUTF8 converts UTF-16 code units into UTF-8 bytes. It returns
// nil when the input is empty or the conversion fails; callers treat
// that as "nothing to write".
func utf16ToUTF8(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}

	raw := make([]byte, 2*len(u))
	for i, v := range u {
		raw[2*i] = byte(v)
		raw[2*i+1] = byte(v >> 8)
	}

	out, err := utf16Encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return nil
	}

	return out
}
