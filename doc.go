// Package peglex implements a runtime-configurable lexer/parser engine
// driven by a small extended Backus-Naur Form (EBNF).
//
// A grammar text is compiled once into a flat table of matchers (see
// Matcher) addressed by integer id. The compiled Engine is then applied
// to an input string any number of times, producing a Token tree or a
// RuntimeError describing the furthest point the input failed to parse.
//
// Overview of the grammar surface
//
// A grammar is a sequence of named productions:
//
//	name ::= body
//	name<P, Q> ::= body   // template production
//	name! ::= body         // transparent rule, omitted from error messages
//
// A body combines the following constructs, from tightest to loosest
// binding: repetition (X+, X*, X?, X{n}, X{n,m}, X{n,}, X{,m}),
// negation (!X), sequencing (A B), then ordered alternation (A | B).
// Terminals are `"literal"`, `i"literal"` (case-insensitive),
// `[abc]`/`[^abc]` (character sets), `[a-z]`/`[^a-z]` (character
// ranges), `<eof>`, and `<nl>`. `// comment` runs to end of line.
//
// Common mistakes
//
// Greedy repetition can starve a following construct: `[a-z]* [a-z]`
// never matches anything, because the `*` already consumed every
// lowercase letter available to it and PEG alternation does not
// backtrack into a committed repetition. Rewrite it with a lookahead
// that excludes one position, or restructure the grammar so the two
// parts cannot compete for the same characters.
//
// Alternation binds looser than sequencing: `A | B C` parses as
// `A | (B C)`, not `(A | B) C`. Parenthesize explicitly when in doubt.
package peglex
