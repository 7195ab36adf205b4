package printer

import "jsprint/pkg/token"

// Config is the emission configuration spec.md §3 enumerates. It is a
// plain value passed to New, mirroring the teacher's Form argument to
// Fprint — no config-file parsing, no environment lookups (spec.md §1
// excludes those from the core).
type Config struct {
	// Minify suppresses all optional (formatting) whitespace and line
	// terminators; grammar-mandated ("hard") spaces still survive.
	Minify bool

	// OmitLastSemicolon, when true, elides the trailing semicolon of the
	// very last top-level statement in EmitScript/EmitModule (R3's named
	// exception).
	OmitLastSemicolon bool

	// SourceMap enables position-tracking callbacks on the writer
	// (spec.md §6, "Optional source-map position events").
	SourceMap bool

	// Target governs whether CallArguments may carry a trailing comma.
	Target token.EcmaVersion

	// IndentUnit is the string written per indent level; defaults to two
	// spaces when empty (spec.md §3: "one stop = configurable string,
	// default two spaces").
	IndentUnit string
}
