package sink

import "io"

// Discard is a Device that accepts and drops every write.
type Discard struct{}

func (Discard) Read(p []byte) (int, error) { return 0, io.EOF }

func (Discard) Write(p []byte) (int, error) { return len(p), nil }

func (Discard) Sync() error { return nil }

func (Discard) Close() error { return nil }

func (Discard) Name() string { return "discard" }
