package derpdu

import "time"

/*
trace.go holds the debug-tracer types shared by both build-tag
variants (trc_on.go / trc_off.go) so that callers and both
implementations agree on the same Tracer/EventType surface regardless
of which one is compiled in.
*/

/*
EnvDebugVar names the environment variable trc_on.go consults at
package init to install a *DefaultTracer automatically.
*/
const EnvDebugVar = "DERPDU_DEBUG"

/*
EventType identifies the kind of event a TraceRecord describes.
*/
type EventType int

const (
	EventEnter EventType = 1 << iota
	EventInfo
	EventExit
)

/*
TraceRecord encapsulates a single observed tracer event: a timestamp,
its EventType, the function name, a per-Encode-call correlation ID,
and the arguments relevant to that event.
*/
type TraceRecord struct {
	Time   time.Time
	Type   EventType
	Func   string
	CallID string
	Args   []any
}

/*
Tracer is implemented by anything that wants to observe TraceRecord
events; DefaultTracer is the package's own implementation.
*/
type Tracer interface {
	Trace(TraceRecord)
}
