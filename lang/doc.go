// Package lang evaluates relative date expressions such as "now-5m" or
// "now-1d/d" against an injected clock.
//
// # Grammar
//
// Informal EBNF. Spaces (' ' and '\t') are skipped between every token:
//
//	Expression  → "now" Operation* EOF
//	Operation   → OpSymbol OptionalInt UnitChar
//	OpSymbol    → '-' | '+' | '/'
//	OptionalInt → digit+ | ε
//	UnitChar    → 's' | 'm' | 'h' | 'd' | 'w' | 'M' | 'Q' | 'y'
//
// The keyword is case-insensitive. Unit codes are not: 'M' is month and 'm'
// is minute. A missing amount means 1, and amounts above 1e9 are rejected.
// The rounding operator '/' truncates to the start of the enclosing period
// and only accepts an amount of 1.
//
// # Evaluation
//
// Expressions are scanned once, left to right, without backtracking.
// Operations apply strictly in source order with no precedence: "now/M+1M"
// rounds to the start of this month and then adds a month, while
// "now+1M/M" adds a month first and rounds afterwards.
//
// The first failure stops the scan. It is returned as an [*Error] carrying
// the message shown to users and the zero-based character offset of the
// offending input, suitable for placing a caret:
//
//	now-1x
//	     ^ unexpected time unit, allowed: s, m, h, d, w, M, Q, y
//
// # Beyond expressions
//
// [Resolve] also accepts absolute dates, [DefaultPresets] and
// [DatePresets] carry the quick-pick catalogs, and [Calc] runs expr-lang
// programs with date functions bound for ad hoc arithmetic between results.
package lang
