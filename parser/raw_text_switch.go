package parser

import (
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/net/html/atom"
)

// RawTextSwitch is a TokenProcessor that puts the tokenizer into script data
// after the start tag of a raw text element, and back into data after the
// matching end tag.
type RawTextSwitch struct {
	elements []atom.Atom
	names    []string
	open     string
}

// NewRawTextSwitch returns a RawTextSwitch for the given element names, or
// for <script> alone if none are given. Names match case-insensitively.
func NewRawTextSwitch(names ...string) *RawTextSwitch {
	s := &RawTextSwitch{}
	if len(names) == 0 {
		s.elements = []atom.Atom{atom.Script}
		return s
	}
	for _, n := range names {
		// tag names arrive ASCII-lowercased, so configured names must too
		n = strings.Map(toASCIILower, n)
		if a := atom.Lookup([]byte(n)); a != 0 {
			s.elements = append(s.elements, a)
			continue
		}
		s.names = append(s.names, n)
	}
	return s
}

func (s *RawTextSwitch) isRawText(tag string, a atom.Atom) bool {
	if a != 0 {
		return slices.Contains(s.elements, a)
	}
	return slices.Contains(s.names, tag)
}

func (s *RawTextSwitch) ProcessToken(t Token) *Progress {
	switch t := t.(type) {
	case StartTag:
		if s.open == "" && !t.SelfClosing && s.isRawText(t.Tag, t.DataAtom) {
			s.open = t.Tag
			state := ScriptDataState
			return MakeProgress(&state)
		}
	case EndTag:
		if s.open != "" {
			s.open = ""
			state := DataState
			return MakeProgress(&state)
		}
	case Char, EOF:
	}
	return nil
}
