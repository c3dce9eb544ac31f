package parser

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// TokenType identifies the shape of a Token.
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Char"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case EndOfFileToken:
		return "EOF"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// Token is one unit of tokenizer output. The set of implementations is
// closed: StartTag, EndTag, Char and EOF.
type Token interface {
	Type() TokenType
	String() string
	token()
}

// StartTag is a token like <p class="a">.
type StartTag struct {
	Tag         string
	DataAtom    atom.Atom
	SelfClosing bool
	Attributes  []Attribute
}

// EndTag is a token like </p>.
type EndTag struct {
	Tag      string
	DataAtom atom.Atom
}

// Char is a single character of text.
type Char rune

// EOF marks the end of input. It is only produced when the tokenizer is
// built with WithEOFToken.
type EOF struct{}

func (StartTag) Type() TokenType { return StartTagToken }
func (EndTag) Type() TokenType   { return EndTagToken }
func (Char) Type() TokenType     { return CharacterToken }
func (EOF) Type() TokenType      { return EndOfFileToken }

func (StartTag) token() {}
func (EndTag) token()   {}
func (Char) token()     {}
func (EOF) token()      {}

// Attr returns the value of the first attribute called name.
func (t StartTag) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (t StartTag) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.Tag)
	for _, a := range t.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	if t.SelfClosing {
		sb.WriteByte('/')
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t EndTag) String() string {
	return "</" + t.Tag + ">"
}

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

func (EOF) String() string {
	return "EOF"
}
