// SPDX-License-Identifier: MIT

package graphexpr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expr is the parse tree of a graph expression.
type Expr struct {
	Header *Header `parser:"@@?"`
	Parts  []*Part `parser:"(@@ (\";\" @@)*)?"`
}

// Header fixes the vertex count.
type Header struct {
	N int `parser:"\"n\" \"=\" @Int \":\""`
}

// Part groups runs; parts share one vertex namespace.
type Part struct {
	Runs []*Run `parser:"(@@ (\",\" @@)*)?"`
}

// Run is a walk u-v-w...; a lone vertex only declares it.
type Run struct {
	Start int   `parser:"@Int"`
	Next  []int `parser:"(\"-\" @Int)*"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[-,;:=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseExpr = participle.MustBuild[Expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)
