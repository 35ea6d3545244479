package parser

import "github.com/alecthomas/participle/v2/lexer"

// schemeLexer tokenizes Scheme's external syntax. Rules are tried in order
// at each position and the first match wins, exactly as
// oisee-psil/pkg/parser/parser.go's psilLexer does — only the rule set
// differs, not the technique.
//
// Two rules need to run before the general Atom rule:
//
//   - Number, so that a leading-dot decimal like ".5" isn't swallowed by
//     Atom's own dot-continuation branch.
//   - Boolean, so "#t"/"#f" aren't mistaken for symbols (they can't be:
//     '#' is not an identStart character — see grammar.go — but keeping
//     Boolean early documents the intent).
//
// Dot is listed after Atom: Atom's grammar already excludes a bare single
// "." (see the comment on identPattern in grammar.go), so by the time Dot is
// tried the only thing left that can match a lone "." is the dotted-pair
// marker itself.
var schemeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Number", Pattern: `[+-]?(?:[0-9]+/[0-9]+|[0-9]*\.[0-9]+|[0-9]+)`},
	{Name: "Boolean", Pattern: `#true|#false|#t|#f`},
	{Name: "Ident", Pattern: identPattern},
	{Name: "Dot", Pattern: `\.`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Quote", Pattern: `'`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
