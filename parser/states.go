package parser

import "strconv"

// State is the tokenizer's position in the tag, attribute and raw-text
// grammar.
type State uint

const (
	DataState State = iota
	TagOpenState
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	ScriptDataState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	TemporaryBufferState
)

func (s State) String() string {
	switch s {
	case DataState:
		return "Data"
	case TagOpenState:
		return "TagOpen"
	case EndTagOpenState:
		return "EndTagOpen"
	case TagNameState:
		return "TagName"
	case BeforeAttributeNameState:
		return "BeforeAttributeName"
	case AttributeNameState:
		return "AttributeName"
	case AfterAttributeNameState:
		return "AfterAttributeName"
	case BeforeAttributeValueState:
		return "BeforeAttributeValue"
	case AttributeValueDoubleQuotedState:
		return "AttributeValueDoubleQuoted"
	case AttributeValueSingleQuotedState:
		return "AttributeValueSingleQuoted"
	case AttributeValueUnquotedState:
		return "AttributeValueUnquoted"
	case AfterAttributeValueQuotedState:
		return "AfterAttributeValueQuoted"
	case SelfClosingStartTagState:
		return "SelfClosingStartTag"
	case ScriptDataState:
		return "ScriptData"
	case ScriptDataLessThanSignState:
		return "ScriptDataLessThanSign"
	case ScriptDataEndTagOpenState:
		return "ScriptDataEndTagOpen"
	case ScriptDataEndTagNameState:
		return "ScriptDataEndTagName"
	case TemporaryBufferState:
		return "TemporaryBuffer"
	}
	return "Invalid(" + strconv.Itoa(int(s)) + ")"
}

// isRawText reports whether s belongs to the script data family, the only
// states in which the scratch buffer is meaningful.
func (s State) isRawText() bool {
	switch s {
	case ScriptDataState, ScriptDataLessThanSignState, ScriptDataEndTagOpenState,
		ScriptDataEndTagNameState, TemporaryBufferState:
		return true
	}
	return false
}
