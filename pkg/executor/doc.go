// Package executor runs external commands behind a pseudo-terminal harness
// so they keep their interactive (colored) output, streams their combined
// output through the indentation filter, and reports their real exit status.
//
// The harness is chosen per platform family by SelectHarness:
//
//	windows          direct pipe, no pseudo-terminal
//	linux            script -q -e -c '<quoted command>' /dev/null
//	darwin, others   script -q /dev/null <command> <args...>
//
// A native pseudo-terminal (creack/pty) can be requested instead of script(1).
// The status returned by Run is always the harness process's own status,
// never the filter's.
package executor
