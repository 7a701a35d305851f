//go:build !derpdu_debug

package derpdu

/*
trc_off.go is the zero-cost build of the debug tracer: every hook
compiles to a no-op so a production build pays nothing for the
DERPDU_DEBUG instrumentation trc_on.go provides. Mirrors the teacher's
trc_off.go / ll_off.go pairing.
*/

type DefaultTracer struct{}

func debugPath(_ ...any) func(_ ...any) { return func(_ ...any) {} }
func debugInfo(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}

func EnableDebug(_ Tracer) {}
func DisableDebug()        {}
