package parser

import (
	"strconv"
	"strings"
)

// Attribute is a finished name/value pair of a start tag. Name is lower-cased
// by the tokenizer; Value is kept verbatim.
type Attribute struct {
	Name  string
	Value string
}

func (a Attribute) String() string {
	return a.Name + "=" + strconv.Quote(a.Value)
}

// AttributeBuilder accumulates one attribute a character at a time.
type AttributeBuilder struct {
	name  strings.Builder
	value strings.Builder
}

// NewAttributeBuilder returns an empty name/value pair.
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{}
}

// AppendChar appends r to the name buffer if isName is set, otherwise to the
// value buffer.
func (b *AttributeBuilder) AppendChar(r rune, isName bool) {
	if isName {
		b.name.WriteRune(r)
		return
	}
	b.value.WriteRune(r)
}

// Attribute returns the pair built so far.
func (b *AttributeBuilder) Attribute() Attribute {
	return Attribute{
		Name:  b.name.String(),
		Value: b.value.String(),
	}
}
