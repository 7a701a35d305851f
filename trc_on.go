//go:build derpdu_debug

package derpdu

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

/*
trc_on.go is the instrumented build of the debug tracer, activated
with -tags derpdu_debug. Grounded on the teacher's trc_on.go: a
package-level Tracer registered behind a mutex, a debugPath "enter/
exit" pair returned as a closure, and an init() that wires up
EnvDebugVar automatically. Departs from the teacher in one respect:
where the teacher tags each TraceRecord with a short random hex
packet ID (makePacketID, rand-seeded), this tracer tags each top-level
Encode/CertEncoder.Encode call with a github.com/google/uuid
correlation ID -- see SPEC_FULL.md's ambient-stack section. The
current ID is held in a single package-level variable, so when encode
calls run concurrently a record carries the ID of the most recently
started call, not necessarily of the call that produced it.
*/

/*
DefaultTracer writes TraceRecord events to stderr, one line per event,
prefixed with the record's CallID.
*/
type DefaultTracer struct {
	mu sync.Mutex
}

/*
NewDefaultTracer returns an initialized *DefaultTracer.
*/
func NewDefaultTracer() *DefaultTracer { return &DefaultTracer{} }

/*
Trace writes rec to stderr.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	arrow := "•"
	switch rec.Type {
	case EventEnter:
		arrow = "→"
	case EventExit:
		arrow = "←"
	}
	args := make([]any, len(rec.Args))
	for i, a := range rec.Args {
		args[i] = fmtTraceArg(a)
	}
	fmt.Fprintf(os.Stderr, "%s [%s] %s %s %v\n", ts, rec.CallID, arrow, rec.Func, args)
}

/*
fmtTraceArg renders an Identifier using ClassNames/EncodingNames so
trace output reads "UNIVERSAL CONSTRUCTED tag:16" instead of a raw
struct dump; every other argument type passes through unchanged.
*/
func fmtTraceArg(a any) any {
	id, ok := a.(Identifier)
	if !ok {
		return a
	}
	return ClassNames[id.Class] + " " + EncodingNames[id.Encoding] + " tag:" + itoa(int(id.Tag))
}

var (
	tmu     sync.RWMutex
	tracer  Tracer = &discardTracer{}
	callID         = ""
	callMu  sync.Mutex
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord) {}

/*
EnableDebug installs t as the package's active Tracer.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug reverts to the no-op tracer.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

func currentCallID() string {
	callMu.Lock()
	defer callMu.Unlock()
	return callID
}

func newCallID() string {
	id := uuid.NewString()
	callMu.Lock()
	callID = id
	callMu.Unlock()
	return id
}

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	pc, _, _, ok := runtime.Caller(2)
	fn := "unknown"
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}

	t.Trace(TraceRecord{
		Time:   time.Now(),
		Type:   level,
		Func:   fn,
		CallID: currentCallID(),
		Args:   args,
	})
}

/*
debugPath marks entry into a top-level Encode call, mints a fresh
correlation ID for it, and returns a closure to be invoked on exit
with the call's return values.
*/
func debugPath(args ...any) func(rets ...any) {
	newCallID()
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

/*
debugInfo reports a mid-call informational event, such as a depth-cap
truncation.
*/
func debugInfo(args ...any) { debugEvent(EventInfo, args...) }

func init() {
	if os.Getenv(EnvDebugVar) == "" {
		return
	}
	EnableDebug(NewDefaultTracer())
}
