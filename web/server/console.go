package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ConsoleMessage is one log line mirrored onto the event stream so the
// viewer can follow the render.
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// consoleEvent packages a formatted log line as a console event.
func consoleEvent(level, format string, args ...interface{}) SSEEvent {
	data, _ := json.Marshal(ConsoleMessage{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	})
	return SSEEvent{Type: "console", Data: string(data)}
}

// sendEvent delivers an event to the stream, giving up when the client
// has gone away.
func sendEvent(ctx context.Context, events chan<- SSEEvent, event SSEEvent) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}

// trySendEvent additionally drops the event when the stream is backed
// up. Console lines and progress ticks never block the render.
func trySendEvent(ctx context.Context, events chan<- SSEEvent, event SSEEvent) {
	select {
	case events <- event:
	case <-ctx.Done():
	default:
	}
}
