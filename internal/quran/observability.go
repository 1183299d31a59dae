package quran

import (
	"fmt"
	"io"
	"time"
)

// FetchEvent records one content fetch, including its retries.
type FetchEvent struct {
	Path      string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives fetch events for logging.
type Observer interface {
	OnFetch(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetch(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] quran_fetch path=%s attempts=%d latency_ms=%d status=%s\n",
		ts, event.Path, event.Attempts, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnFetch(FetchEvent) {}
