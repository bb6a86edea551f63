package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *syncBuffer, needle string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), needle) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("%q not logged; got:\n%s", needle, buf.String())
}

func TestStartGoroutineLogger(t *testing.T) {
	buf := &syncBuffer{}
	stop := StartGoroutineLogger(10*time.Millisecond, slog.New(slog.NewJSONHandler(buf, nil)))
	defer stop()
	waitFor(t, buf, `"msg":"debug.goroutines"`)
	stop()
	stop() // second call is a no-op
}

func TestStartMemLogger(t *testing.T) {
	buf := &syncBuffer{}
	stop := StartMemLogger(10*time.Millisecond, slog.New(slog.NewJSONHandler(buf, nil)))
	defer stop()
	waitFor(t, buf, `"msg":"debug.memstats"`)
}

func TestStart_StopHaltsBothLoggers(t *testing.T) {
	buf := &syncBuffer{}
	stop := Start(5*time.Millisecond, 5*time.Millisecond, slog.New(slog.NewJSONHandler(buf, nil)))
	waitFor(t, buf, `"msg":"debug.goroutines"`)
	waitFor(t, buf, `"msg":"debug.memstats"`)
	stop()

	// Allow a tick that was already in flight to finish.
	time.Sleep(30 * time.Millisecond)
	settled := buf.String()
	time.Sleep(60 * time.Millisecond)
	if got := buf.String(); got != settled {
		t.Fatalf("loggers kept writing after stop:\n%s", strings.TrimPrefix(got, settled))
	}
	stop()
}
