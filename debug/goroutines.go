package debug

// Periodic runtime loggers, started only when config.Debug is true. They run
// on their own goroutines and never touch UI state.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"
)

// StartGoroutineLogger logs goroutine count and stack/heap usage every
// interval. The returned func stops the logger.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var goroutines uint64
			if samples[0].Value.Kind() == metrics.KindUint64 {
				goroutines = samples[0].Value.Uint64()
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("debug.goroutines",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("stack_sys", ms.StackSys),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
			)
		}
	}()
	return stopOnce(done)
}

// Start runs the goroutine and memory loggers. The returned func stops both and
// may be called more than once.
func Start(goroutineEvery, memEvery time.Duration, logger *slog.Logger) (stop func()) {
	stopGoroutines := StartGoroutineLogger(goroutineEvery, logger)
	stopMem := StartMemLogger(memEvery, logger)
	return func() {
		stopGoroutines()
		stopMem()
	}
}

func stopOnce(done chan struct{}) func() {
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
