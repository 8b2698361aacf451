// Package goof implements the goofscript interpreter. A goofscript program is
// a plain text file where every physical line is exactly one statement:
//   - `x be expr` assigns, `write expr` prints, `end` stops the program.
//   - `run at n` executes line n once; `run from a to b` executes lines a..b.
//     Both resume on the line after the run statement.
//   - Any statement may end with `if expr` to make it conditional.
//   - Values are ints, floats (`3 dot 14`), text, choices (`yes`/`no`) and
//     nothing. Operators are words: plus, minus, times, over, mod, pow,
//     below, above, atmost, atleast, is, isnt, not, and, or, neg.
//   - `num`, `text` and `choice` convert between kinds and never fail.
//
// `com` starts a comment that runs to the end of the line. Source is lexed,
// parsed and then evaluated by walking the tree; the whole program is parsed
// before the first line runs so a run statement can target any line.
package goof
