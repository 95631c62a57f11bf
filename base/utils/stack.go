package utils

import (
	"bytes"
	"runtime"
)

// Stack returns a formatted stack trace of the calling goroutine, skipping
// the first skip frames.
func Stack(skip int) []byte {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, false)
	trace := buf[:n]

	lines := bytes.Split(trace, []byte("\n"))
	// the first line is the goroutine header, each frame takes two lines
	drop := 1 + skip*2
	if drop >= len(lines) {
		return trace
	}
	out := [][]byte{lines[0]}
	out = append(out, lines[drop:]...)
	return bytes.Join(out, []byte("\n"))
}
