package scan

import (
	"strings"
	"unicode/utf8"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
)

// Scanner produces tokens from source text, treating marker-comment bodies
// as significant syntax. All delimiter discoveries go into the injected
// recorder, so a full token pass leaves behind the complete delimiter
// record for span reconstruction.
type Scanner struct {
	src          string
	w            *comment.Walker
	unterminated bool
}

// New creates a scanner over src recording delimiters into rec.
func New(src string, rec *comment.Recorder) *Scanner {
	return &Scanner{src: src, w: comment.NewWalker(src, rec)}
}

// InMarker reports whether the scanner currently sits inside a marker
// comment region.
func (s *Scanner) InMarker() bool { return s.w.InMarked() }

// Unterminated reports whether the scan reached end of input with a marker
// region still open, as happens with mid-edit source. The token stream is
// still complete; the condition is informational.
func (s *Scanner) Unterminated() bool { return s.unterminated }

// Next returns the next significant token, or an EOF token at the end of
// input. Trivia skipping follows the delimiter classifier: plain comments
// and comments with three or more opener colons are opaque; a single-marker
// opener stops just short of its colon so the colon is lexed as a real
// token; a double-marker opener is consumed whole and the region body is
// lexed as ordinary tokens. The region's closing "*/" is swallowed as
// trailing trivia, so an empty "/*:: */" contributes nothing at all.
func (s *Scanner) Next() Token {
	pos := s.w.Scan(len(s.src), true)
	if pos >= len(s.src) {
		if s.w.InMarked() {
			s.unterminated = true
		}
		return Token{Kind: EOF, Start: pos, End: pos}
	}
	tok := s.lex(pos)
	s.w.Skip(tok.End)
	return tok
}

func (s *Scanner) lex(pos int) Token {
	c := s.src[pos]
	switch {
	case isIdentStart(c):
		end := pos + 1
		for end < len(s.src) && isIdentPart(s.src[end]) {
			end++
		}
		return s.tok(Ident, pos, end)
	case c >= '0' && c <= '9':
		return s.lexNumber(pos)
	case c == '.' && pos+1 < len(s.src) && s.src[pos+1] >= '0' && s.src[pos+1] <= '9':
		return s.lexNumber(pos)
	case c == '"' || c == '\'':
		return s.lexString(pos, c)
	case c == '`':
		return s.lexTemplate(pos)
	case c == ':':
		return s.tok(Colon, pos, pos+1)
	default:
		return s.lexPunct(pos)
	}
}

func (s *Scanner) tok(k Kind, start, end int) Token {
	return Token{Kind: k, Start: start, End: end, Value: s.src[start:end]}
}

func (s *Scanner) lexNumber(pos int) Token {
	end := pos
	if s.src[end] == '0' && end+1 < len(s.src) && strings.ContainsRune("xXbBoO", rune(s.src[end+1])) {
		end += 2
		for end < len(s.src) && (isHexDigit(s.src[end]) || s.src[end] == '_') {
			end++
		}
	} else {
		for end < len(s.src) && (isDigit(s.src[end]) || s.src[end] == '_') {
			end++
		}
		if end < len(s.src) && s.src[end] == '.' {
			end++
			for end < len(s.src) && (isDigit(s.src[end]) || s.src[end] == '_') {
				end++
			}
		}
		if end < len(s.src) && (s.src[end] == 'e' || s.src[end] == 'E') {
			e := end + 1
			if e < len(s.src) && (s.src[e] == '+' || s.src[e] == '-') {
				e++
			}
			if e < len(s.src) && isDigit(s.src[e]) {
				end = e
				for end < len(s.src) && isDigit(s.src[end]) {
					end++
				}
			}
		}
	}
	if end < len(s.src) && s.src[end] == 'n' { // bigint suffix
		end++
	}
	return s.tok(Number, pos, end)
}

// lexString scans a quoted string. An unterminated literal degrades to
// "stops at end of line", matching the best-effort contract for mid-edit
// source.
func (s *Scanner) lexString(pos int, quote byte) Token {
	end := pos + 1
	for end < len(s.src) {
		switch s.src[end] {
		case '\\':
			end += 2
			continue
		case quote:
			return s.tok(String, pos, end+1)
		case '\n':
			return s.tok(String, pos, end)
		}
		end++
	}
	return s.tok(String, pos, len(s.src))
}

// lexTemplate scans a template literal as one opaque token. Substitution
// holes are not descended into; the general tokenizer this layer augments
// owns that machinery.
func (s *Scanner) lexTemplate(pos int) Token {
	end := pos + 1
	for end < len(s.src) {
		switch s.src[end] {
		case '\\':
			end += 2
			continue
		case '`':
			return s.tok(Template, pos, end+1)
		}
		end++
	}
	return s.tok(Template, pos, len(s.src))
}

func (s *Scanner) lexPunct(pos int) Token {
	for n := 4; n >= 2; n-- {
		if pos+n <= len(s.src) && puncts[s.src[pos:pos+n]] {
			return s.tok(Punct, pos, pos+n)
		}
	}
	c := s.src[pos]
	if strings.IndexByte("+-*/%=!<>&|^?;,.(){}[]@#~", c) >= 0 {
		return s.tok(Punct, pos, pos+1)
	}
	// Unrecognized character: one rune, so the scanner always advances.
	_, size := utf8.DecodeRuneInString(s.src[pos:])
	return s.tok(Unknown, pos, pos+size)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
