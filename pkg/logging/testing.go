package logging

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Recorder is a trace-level JSON logger whose output is kept in memory.
type Recorder struct {
	Logger *zerolog.Logger
	buf    bytes.Buffer
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	logger := zerolog.New(&r.buf).Level(zerolog.TraceLevel)
	r.Logger = &logger
	return r
}

// String returns everything logged so far.
func (r *Recorder) String() string {
	return r.buf.String()
}

// Events decodes each recorded line. Lines that are not JSON are skipped.
func (r *Recorder) Events() []map[string]any {
	var events []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(r.buf.Bytes()))
	for scanner.Scan() {
		var event map[string]any
		if json.Unmarshal(scanner.Bytes(), &event) == nil {
			events = append(events, event)
		}
	}
	return events
}

// Find returns the first event logged with msg, or nil.
func (r *Recorder) Find(msg string) map[string]any {
	for _, event := range r.Events() {
		if event[zerolog.MessageFieldName] == msg {
			return event
		}
	}
	return nil
}

// Discard returns a logger that drops every event.
func Discard() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
