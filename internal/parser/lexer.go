package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Item and room ids are snake_case Idents; bets are bare integers.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}

var defaultParser = Build()

// Parse lexes and parses one lowercased line of player input, mapping
// grammar failures to a usage hint for the attempted command.
func Parse(input string) (*Command, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	cmd, err := defaultParser.ParseString("", normalized)
	if err != nil {
		return nil, MapError(normalized, err)
	}
	return cmd, nil
}
