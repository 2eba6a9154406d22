package wallclocktest

import (
	"bytes"
	"strings"
	"sync"
)

// SyncBuffer is a bytes.Buffer guarded for use as a shared writer across goroutines.
type SyncBuffer struct {
	mux    sync.Mutex
	buffer bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buffer.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buffer.String()
}

// Lines returns every complete newline-terminated line written so far.
func (b *SyncBuffer) Lines() []string {
	output := b.String()
	end := strings.LastIndex(output, "\n")
	if end < 0 {
		return nil
	}

	return strings.Split(output[:end], "\n")
}
