package parser

import (
	"io"

	"github.com/pkg/errors"
)

// TokenProcessor consumes tokens downstream of the tokenizer, typically a
// tree builder. The returned Progress, if non-nil, is applied before the
// next token is produced.
type TokenProcessor interface {
	ProcessToken(Token) *Progress
}

// TokenProcessorFunc adapts a function to a TokenProcessor.
type TokenProcessorFunc func(Token) *Progress

func (f TokenProcessorFunc) ProcessToken(t Token) *Progress { return f(t) }

// Progress is the feedback a TokenProcessor hands back to the tokenizer.
type Progress struct {
	// TokenizerState, if set, is the state the tokenizer continues in.
	// Only DataState and ScriptDataState may be requested.
	TokenizerState *State
}

func MakeProgress(tokenizerState *State) *Progress {
	return &Progress{
		TokenizerState: tokenizerState,
	}
}

type Parser struct {
	Tokenizer *Tokenizer
	Processor TokenProcessor
}

func NewParser(html string, processor TokenProcessor, opts ...Option) *Parser {
	return &Parser{
		Tokenizer: NewHTMLTokenizer(html, opts...),
		Processor: processor,
	}
}

// Start drives the tokenizer to exhaustion and returns every token produced.
func (p *Parser) Start() ([]Token, error) {
	tokens := []Token{}
	for {
		t, err := p.Tokenizer.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "tokenizing after %d tokens", len(tokens))
		}
		tokens = append(tokens, t)

		if p.Processor == nil {
			continue
		}
		if err := p.apply(p.Processor.ProcessToken(t)); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) apply(progress *Progress) error {
	if progress == nil || progress.TokenizerState == nil {
		return nil
	}
	switch s := *progress.TokenizerState; s {
	case DataState, ScriptDataState:
		p.Tokenizer.switchTo(s)
		return nil
	default:
		return errors.Errorf("processor requested unsupported tokenizer state %s", s)
	}
}
