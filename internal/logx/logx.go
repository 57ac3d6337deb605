// Package logx is a minimal env-gated debug logger.
package logx

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// DebugEnv enables debug output when set to a non-empty value.
	DebugEnv = "SPLITDIFF_DEBUG"
	// FileEnv names a file debug output is appended to instead of stderr.
	FileEnv = "SPLITDIFF_LOG_FILE"
)

var (
	mu     sync.Mutex
	out    io.Writer = os.Stderr
	logger           = log.New(io.Discard, "splitdiff: ", log.LstdFlags|log.Lmicroseconds)
)

// Enabled reports whether debug logging is turned on.
func Enabled() bool {
	return os.Getenv(DebugEnv) != "" || os.Getenv(FileEnv) != ""
}

// SetOutput redirects debug output. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debugf logs a debug message if logging is enabled.
func Debugf(format string, v ...any) {
	if !Enabled() {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	w := out
	if path := os.Getenv(FileEnv); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer f.Close()
		w = f
	}

	var b bytes.Buffer
	logger.SetOutput(&b)
	logger.Output(2, fmt.Sprintf(format, v...))
	_, _ = w.Write(b.Bytes())
}
