package parser

import (
	"strings"

	"golang.org/x/net/html/atom"
)

type tagType uint

const (
	startTag tagType = iota
	endTag
)

func (t tagType) String() string {
	if t == endTag {
		return "end tag"
	}
	return "start tag"
}

// tagBuilder builds a start or end tag up during tokenization. At most one
// exists at a time and it is owned by the Tokenizer's current slot.
type tagBuilder struct {
	tagType     tagType
	name        strings.Builder
	selfClosing bool
	attributes  []*AttributeBuilder
}

// createTag fills the empty in-construction slot with a new tag.
func (p *Tokenizer) createTag(t tagType) {
	p.assert(p.current == nil, "cannot create a %s while %s is under construction", t, p.currentTagType())
	p.current = &tagBuilder{tagType: t}
}

// appendTagName appends a character to the current tag's name.
func (p *Tokenizer) appendTagName(r rune) {
	p.assert(p.current != nil, "no tag under construction to append %q to", r)
	p.current.name.WriteRune(r)
}

// setSelfClosing changes the self-closing flag to "set".
func (p *Tokenizer) setSelfClosing() {
	p.assert(p.current != nil, "no tag under construction to mark self-closing")
	p.current.selfClosing = true
}

// startNewAttribute begins an empty attribute on the current tag. End tags
// accumulate attributes too; they are dropped when the token is taken.
func (p *Tokenizer) startNewAttribute() {
	p.assert(p.current != nil, "no tag under construction to start an attribute on")
	p.current.attributes = append(p.current.attributes, NewAttributeBuilder())
}

// appendAttribute appends a character to the name or value of the most
// recently started attribute.
func (p *Tokenizer) appendAttribute(r rune, isName bool) {
	p.assert(p.current != nil, "no tag under construction to append attribute character %q to", r)
	n := len(p.current.attributes)
	p.assert(n > 0, "no attribute started to append %q to", r)
	p.current.attributes[n-1].AppendChar(r, isName)
}

// takeToken finalizes the tag under construction and empties the slot.
func (p *Tokenizer) takeToken() Token {
	p.assert(p.current != nil, "no tag under construction to take")
	t := p.current
	p.current = nil

	name := t.name.String()
	a := atom.Lookup([]byte(name))
	if t.tagType == endTag {
		return EndTag{Tag: name, DataAtom: a}
	}

	// every started attribute is kept, including nameless ones such as
	// the value in <p =x>
	var attrs []Attribute
	for _, b := range t.attributes {
		attrs = append(attrs, b.Attribute())
	}
	return StartTag{
		Tag:         name,
		DataAtom:    a,
		SelfClosing: t.selfClosing,
		Attributes:  attrs,
	}
}

// discardTag abandons the tag under construction, if any.
func (p *Tokenizer) discardTag() {
	if p.current == nil {
		return
	}
	p.logger.WithField("tag", p.current.name.String()).Debugf("discarding unterminated %s", p.current.tagType)
	p.current = nil
}

func (p *Tokenizer) currentTagType() string {
	switch {
	case p.current == nil:
		return "nothing"
	case p.current.tagType == endTag:
		return "an end tag"
	default:
		return "a start tag"
	}
}
