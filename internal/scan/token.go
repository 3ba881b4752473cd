// Package scan lexes plain-syntax source augmented with marker comments.
// The scanner composes the delimiter classifier into its trivia skipping so
// that a parser driving it sees ordinary comments as trivia, double-marker
// comment bodies as ordinary significant tokens, and a single-marker
// comment as a trivia prefix followed by one real colon token.
package scan

import "fmt"

// Kind is a lexical token kind.
type Kind int

const (
	EOF Kind = iota
	Ident
	Number
	String
	Template
	Punct
	Colon
	Unknown
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case Number:
		return "number"
	case String:
		return "string"
	case Template:
		return "template"
	case Punct:
		return "punct"
	case Colon:
		return "colon"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a lexical token. Offsets are half-open byte positions into the
// scanned source; Value is the raw text slice.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Value string
}

// puncts lists multi-character punctuation, longest first within each
// length bucket. Keywords are deliberately absent: to this layer a keyword
// is an identifier, and telling them apart is the parser's business.
var puncts = map[string]bool{
	">>>=": true,
	"...":  true, "===": true, "!==": true, "**=": true, "<<=": true,
	">>=": true, ">>>": true, "&&=": true, "||=": true, "??=": true,
	"=>": true, "==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "??": true, "?.": true, "++": true,
	"--": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true, "<<": true,
	">>": true, "**": true,
}
