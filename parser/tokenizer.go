package parser

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"
)

// parserStateHandler processes one rune in a given state. It reports whether
// the rune must be reconsumed and which state comes next.
type parserStateHandler func(r rune, eof bool) (bool, State)

// Tokenizer turns HTML text into a stream of tokens. It is single use and
// must not be driven from more than one goroutine.
type Tokenizer struct {
	done          bool
	err           error
	currentState  State
	pos           int
	input         []rune
	current       *tagBuilder
	tempBuffer    []rune
	emittedTokens []Token
	emitEOF       bool
	trace         bool
	logger        *logrus.Entry
}

// NewHTMLTokenizer creates a tokenizer over the whole of html, positioned in
// the data state.
func NewHTMLTokenizer(html string, opts ...Option) *Tokenizer {
	cfg := newConfig(opts)
	return &Tokenizer{
		currentState: DataState,
		input:        []rune(html),
		emitEOF:      cfg.emitEOF,
		trace:        cfg.logger.IsLevelEnabled(logrus.TraceLevel),
		logger:       cfg.logger.WithField("component", "tokenizer"),
	}
}

func (p *Tokenizer) stateToParser(state State) parserStateHandler {
	switch state {
	case DataState:
		return p.dataStateParser
	case TagOpenState:
		return p.tagOpenStateParser
	case EndTagOpenState:
		return p.endTagOpenStateParser
	case TagNameState:
		return p.tagNameStateParser
	case BeforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case AttributeNameState:
		return p.attributeNameStateParser
	case AfterAttributeNameState:
		return p.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case ScriptDataState:
		return p.scriptDataStateParser
	case ScriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case TemporaryBufferState:
		return p.temporaryBufferStateParser
	}

	return p.unknownStateParser
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpper(r) || (r >= 'a' && r <= 'z')
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}

func (p *Tokenizer) emit(tokens ...Token) {
	p.emittedTokens = append(p.emittedTokens, tokens...)
}

func (p *Tokenizer) emitCurrentTag() State {
	p.emit(p.takeToken())
	return DataState
}

// endOfInput ends the token stream. A tag still under construction is
// dropped rather than emitted.
func (p *Tokenizer) endOfInput() (bool, State) {
	p.discardTag()
	p.tempBuffer = p.tempBuffer[:0]
	if p.emitEOF {
		p.emit(EOF{})
	}
	p.done = true
	return false, DataState
}

func (p *Tokenizer) dataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case '<':
		return false, TagOpenState
	default:
		p.emit(Char(r))
		return false, DataState
	}
}

func (p *Tokenizer) tagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch {
	case r == '/':
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		p.createTag(startTag)
		return true, TagNameState
	default:
		// the '<' is dropped, r is read again as data
		return true, DataState
	}
}

func (p *Tokenizer) endTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	if isASCIIAlpha(r) {
		p.createTag(endTag)
		return true, TagNameState
	}
	return false, EndTagOpenState
}

func (p *Tokenizer) tagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch {
	case r == ' ':
		// <tag attr
		return false, BeforeAttributeNameState
	case r == '/':
		// <tag/
		return false, SelfClosingStartTagState
	case r == '>':
		return false, p.emitCurrentTag()
	default:
		p.appendTagName(toASCIILower(r))
		return false, TagNameState
	}
}

func (p *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof || r == '/' || r == '>' {
		return true, AfterAttributeNameState
	}
	p.startNewAttribute()
	return true, AttributeNameState
}

func (p *Tokenizer) attributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case ' ', '/', '>':
		// <tag disabled>
		return true, AfterAttributeNameState
	case '=':
		return false, BeforeAttributeValueState
	default:
		p.appendAttribute(toASCIILower(r), true)
		return false, AttributeNameState
	}
}

func (p *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case ' ':
		return false, AfterAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '=':
		return false, BeforeAttributeValueState
	case '>':
		return false, p.emitCurrentTag()
	default:
		// <tag attr1 a
		p.startNewAttribute()
		return true, AttributeNameState
	}
}

func (p *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case ' ':
		return false, BeforeAttributeValueState
	case '"':
		return false, AttributeValueDoubleQuotedState
	case '\'':
		return false, AttributeValueSingleQuotedState
	default:
		return true, AttributeValueUnquotedState
	}
}

func (p *Tokenizer) attributeValueQuotedStateParser(quote rune, self State) parserStateHandler {
	return func(r rune, eof bool) (bool, State) {
		if eof {
			return p.endOfInput()
		}
		if r == quote {
			return false, AfterAttributeValueQuotedState
		}
		p.appendAttribute(r, false)
		return false, self
	}
}

func (p *Tokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.attributeValueQuotedStateParser('"', AttributeValueDoubleQuotedState)(r, eof)
}

func (p *Tokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.attributeValueQuotedStateParser('\'', AttributeValueSingleQuotedState)(r, eof)
}

func (p *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case ' ':
		return false, BeforeAttributeNameState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.appendAttribute(r, false)
		return false, AttributeValueUnquotedState
	}
}

func (p *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	default:
		// <tag a="1"b
		return true, BeforeAttributeNameState
	}
}

func (p *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	if r == '>' {
		p.setSelfClosing()
		return false, p.emitCurrentTag()
	}
	return false, SelfClosingStartTagState
}

func (p *Tokenizer) unknownStateParser(r rune, eof bool) (bool, State) {
	p.assert(false, "no handler for state %d", uint(p.currentState))
	return false, DataState
}

func (p *Tokenizer) consume() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, true
	}
	r := p.input[p.pos]
	p.pos++
	return r, false
}

func (p *Tokenizer) processRune(r rune, eof bool) {
	reconsume := true
	for reconsume {
		prev := p.currentState
		reconsume, p.currentState = p.stateToParser(p.currentState)(r, eof)
		if p.trace {
			p.logger.WithFields(logrus.Fields{
				"rune":      string(r),
				"eof":       eof,
				"pos":       p.pos,
				"from":      prev,
				"to":        p.currentState,
				"reconsume": reconsume,
			}).Trace("transition")
		}
	}
}

func (p *Tokenizer) takeEmittedToken() (Token, bool) {
	if len(p.emittedTokens) == 0 {
		return nil, false
	}
	t := p.emittedTokens[0]
	p.emittedTokens = p.emittedTokens[1:]
	return t, true
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted and keeps doing so on later calls. If the tokenizer hits a
// contract violation it halts and returns a *ContractError, now and on every
// later call.
func (p *Tokenizer) Next() (token Token, err error) {
	if p.err != nil {
		return nil, p.err
	}
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			p.halt(ce)
			token, err = nil, ce
		}
	}()

	// some states emit more than one token at a time and some emit none.
	// loop until at least one token is queued and then take it.
	for {
		if t, ok := p.takeEmittedToken(); ok {
			return t, nil
		}
		if p.done {
			return nil, io.EOF
		}
		if p.currentState == TemporaryBufferState {
			p.flushTemporaryBuffer()
			continue
		}
		r, eof := p.consume()
		p.processRune(r, eof)
	}
}

func (p *Tokenizer) halt(ce *ContractError) {
	p.logger.WithError(ce).WithField("pos", p.pos).Error("tokenizer halted")
	p.err = ce
	p.done = true
	p.current = nil
	p.emittedTokens = nil
	p.tempBuffer = nil
}

// All returns the remaining tokens as a sequence. The sequence stops at the
// end of input or when the tokenizer halts; Err reports the latter.
func (p *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			t, err := p.Next()
			if err != nil {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Err returns the error that halted the tokenizer, if any.
func (p *Tokenizer) Err() error {
	return p.err
}

// State returns the state the next rune will be processed in.
func (p *Tokenizer) State() State {
	return p.currentState
}

// EnterScriptData switches the tokenizer to script data, in which markup is
// not recognized until a closing tag. A tree builder calls it after
// receiving the start tag of a raw text element such as <script>.
func (p *Tokenizer) EnterScriptData() {
	p.switchTo(ScriptDataState)
}

func (p *Tokenizer) switchTo(s State) {
	if !s.isRawText() {
		p.tempBuffer = p.tempBuffer[:0]
	}
	p.logger.WithFields(logrus.Fields{"from": p.currentState, "to": s}).Debug("state switched")
	p.currentState = s
}
