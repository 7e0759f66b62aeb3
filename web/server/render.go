package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/df07/go-solid-raytracer/pkg/renderer"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

// RenderRequest holds the validated parameters of one render stream.
type RenderRequest struct {
	Scene   string
	Width   int
	Height  int
	Samples int
	Depth   int
	Workers int
}

// SSEEvent is one event on the stream. Every write to the client goes
// through a single writer goroutine fed by a channel of these.
type SSEEvent struct {
	Type string // "console", "progress", "frame", "complete", "error"
	Data string
}

// frameUpdate carries one tonemapped snapshot to the client.
type frameUpdate struct {
	ImageData    string `json:"imageData"` // base64-encoded PNG
	Samples      int    `json:"samples"`
	TotalSamples int    `json:"totalSamples"`
	IsComplete   bool   `json:"isComplete"`
	ElapsedMs    int64  `json:"elapsedMs"`
}

// progressUpdate reports row completion inside one sample.
type progressUpdate struct {
	Sample       int `json:"sample"`
	TotalSamples int `json:"totalSamples"`
	RowsDone     int `json:"rowsDone"`
	TotalRows    int `json:"totalRows"`
}

// handleRender streams a render over SSE: a frame after every sample,
// progress ticks and console lines, ending with a complete or error
// event. Closing the connection cancels the render at the next sample
// boundary.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	setSSEHeaders(w)
	ctx := r.Context()

	events := make(chan SSEEvent, 64)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		writeSSEEvents(w, ctx, events)
	}()
	defer func() {
		close(events)
		<-writerDone
	}()

	req, err := parseRenderRequest(r)
	if err != nil {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	sceneObj, ok := scene.Builtin(req.Scene)
	if !ok {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: "unknown scene: " + req.Scene})
		return
	}

	opts := renderer.DefaultOptions()
	opts.Width = req.Width
	opts.Height = req.Height
	opts.Samples = req.Samples
	opts.MaxDepth = req.Depth
	if req.Workers > 0 {
		opts.NumWorkers = req.Workers
	}

	rend, err := renderer.New(sceneObj, opts)
	if err != nil {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	start := time.Now()
	rend.SetSnapshotInterval(0)
	rend.SetImageWriter(&sseWriter{ctx: ctx, events: events, total: req.Samples, start: start})
	rend.SetProgressSink(&sseSink{ctx: ctx, events: events})

	trySendEvent(ctx, events, consoleEvent("info",
		"rendering %q at %dx%d, %d samples, %d primitives",
		req.Scene, req.Width, req.Height, req.Samples, sceneObj.PrimitiveCount()))

	if _, _, err := rend.Render(ctx); err != nil {
		sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("render failed: %v", err)})
		return
	}
	sendEvent(ctx, events, SSEEvent{
		Type: "complete",
		Data: fmt.Sprintf("rendered %d samples in %v", req.Samples, time.Since(start).Round(time.Millisecond)),
	})
}

// setSSEHeaders sets the response headers for Server-Sent Events.
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents drains the event channel onto the response until the
// channel closes or the client goes away. It is the only goroutine
// that writes to w.
func writeSSEEvents(w http.ResponseWriter, ctx context.Context, events <-chan SSEEvent) {
	flusher, canFlush := w.(http.Flusher)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		case <-ctx.Done():
			return
		}
	}
}

// sseWriter forwards renderer snapshots onto the event stream. The
// renderer calls WriteImage between samples, so frames arrive in
// order.
type sseWriter struct {
	ctx    context.Context
	events chan<- SSEEvent
	total  int
	start  time.Time
}

func (sw *sseWriter) WriteImage(img *image.RGBA, samples int, final bool) error {
	imageData, err := imageToBase64PNG(img)
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	data, err := json.Marshal(frameUpdate{
		ImageData:    imageData,
		Samples:      samples,
		TotalSamples: sw.total,
		IsComplete:   final,
		ElapsedMs:    time.Since(sw.start).Milliseconds(),
	})
	if err != nil {
		return err
	}
	sendEvent(sw.ctx, sw.events, SSEEvent{Type: "frame", Data: string(data)})
	return nil
}

// sseSink forwards renderer progress onto the event stream. Row ticks
// are droppable; sample completions go out as console lines.
type sseSink struct {
	ctx    context.Context
	events chan<- SSEEvent
}

func (ss *sseSink) Progress(sample, totalSamples, rowsDone, totalRows int) {
	data, _ := json.Marshal(progressUpdate{
		Sample:       sample,
		TotalSamples: totalSamples,
		RowsDone:     rowsDone,
		TotalRows:    totalRows,
	})
	trySendEvent(ss.ctx, ss.events, SSEEvent{Type: "progress", Data: string(data)})
}

func (ss *sseSink) SampleDone(sample, totalSamples int, elapsed time.Duration) {
	trySendEvent(ss.ctx, ss.events, consoleEvent("info",
		"sample %d/%d done in %v", sample, totalSamples, elapsed.Round(time.Millisecond)))
}

// parseRenderRequest validates the query parameters of a render
// stream. Workers zero lets the renderer pick.
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default"}
	query := r.URL.Query()
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 32, 1, 1024); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 50, 1, 200); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	return req, nil
}
