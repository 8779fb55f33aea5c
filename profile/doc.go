// Package profile provides optional runtime profiling backed by
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	reldate --pprof-mode cpu --pprof-dir ./profiles eval now-1d/d
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// stopper, so callers never need build constraints of their own.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
