// Package logging builds the slog logger behind the dotstore CLI's
// -v/--quiet/--log-format/--log-file flags.
//
// [New] maps flag values onto a logger: a colorized text handler or a JSON
// handler on the primary stream, with optional JSON file sinks fanned out
// through [MultiHandler]. Color engages only on terminals and respects
// NO_COLOR and TERM=dumb.
//
//	slog.SetDefault(logging.New(logging.Options{
//		Verbosity: 1,
//		Output:    os.Stderr,
//	}))
//
// In tests, [ForTest] routes records through t.Log so they surface only on
// failure or under -v.
package logging
