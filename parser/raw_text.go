package parser

func (p *Tokenizer) scriptDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.endOfInput()
	}
	switch r {
	case '<':
		return false, ScriptDataLessThanSignState
	default:
		p.emit(Char(r))
		return false, ScriptDataState
	}
}

func (p *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.emit(Char('<'))
		return p.endOfInput()
	}
	switch r {
	case '/':
		// reset buffer on </
		p.tempBuffer = p.tempBuffer[:0]
		return false, ScriptDataEndTagOpenState
	default:
		p.emit(Char('<'))
		return true, ScriptDataState
	}
}

func (p *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.emit(Char('<'))
		return p.endOfInput()
	}
	if isASCIIAlpha(r) {
		p.createTag(endTag)
		return true, ScriptDataEndTagNameState
	}
	p.emit(Char('<'))
	return true, ScriptDataState
}

func (p *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.startRollback()
		p.emitTemporaryBuffer()
		return p.endOfInput()
	}
	switch {
	case r == '>':
		return false, p.emitCurrentTag()
	case isASCIIAlpha(r):
		p.tempBuffer = append(p.tempBuffer, r)
		p.appendTagName(toASCIILower(r))
		return false, ScriptDataEndTagNameState
	default:
		p.startRollback()
		p.tempBuffer = append(p.tempBuffer, r)
		return false, TemporaryBufferState
	}
}

// temporaryBufferStateParser is never reached: Next drains the temporary
// buffer before it reads another rune.
func (p *Tokenizer) temporaryBufferStateParser(r rune, eof bool) (bool, State) {
	p.assert(false, "temporary buffer reached with rune %q", r)
	return false, ScriptDataState
}

// startRollback abandons a speculative end tag scan. The speculative end tag
// is discarded and the characters read for it are queued for replay behind
// the '<' that started the attempt.
func (p *Tokenizer) startRollback() {
	p.discardTag()
	buf := make([]rune, 0, len(p.tempBuffer)+2)
	buf = append(buf, '<')
	p.tempBuffer = append(buf, p.tempBuffer...)
}

// flushTemporaryBuffer replays one character from the temporary buffer, or
// returns to script data once the buffer is empty.
func (p *Tokenizer) flushTemporaryBuffer() {
	if len(p.tempBuffer) == 0 {
		p.switchTo(ScriptDataState)
		return
	}
	r := p.tempBuffer[0]
	p.tempBuffer = p.tempBuffer[1:]
	p.emit(Char(r))
}

func (p *Tokenizer) emitTemporaryBuffer() {
	for _, r := range p.tempBuffer {
		p.emit(Char(r))
	}
	p.tempBuffer = p.tempBuffer[:0]
}
