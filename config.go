package emit

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultBufferSize is the capacity a buffered stream gets when it is
// created without an explicit size.
var DefaultBufferSize = 1024

// LargeBuffersEnv, when present in the environment, doubles the default
// buffer capacity.
const LargeBuffersEnv = "EMIT_LARGE_BUFFERS"

// BufferSizeEnv overrides the default buffer capacity with an exact
// byte count. It takes precedence over LargeBuffersEnv.
const BufferSizeEnv = "EMIT_BUFFER_SIZE"

// initConfig resolves DefaultBufferSize from the current environment
func initConfig() error {
	DefaultBufferSize = 1024

	if _, ok := os.LookupEnv(LargeBuffersEnv); ok {
		DefaultBufferSize = 2048
	}

	s, ok := os.LookupEnv(BufferSizeEnv)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "invalid %v value %q", BufferSizeEnv, s)
	}
	if n <= 0 {
		return errors.Errorf("invalid %v value %v, must be positive", BufferSizeEnv, n)
	}

	DefaultBufferSize = n
	return nil
}
