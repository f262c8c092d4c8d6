package parser

import (
	"fmt"
	"strings"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Scanner turns raw source text into a flat token slice. The slice plus the
// parser's integer cursor form a restartable stream: saving and restoring a
// cursor index re-reads the same tokens without re-scanning.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanErrorKind int

const (
	LexError ScanErrorKind = iota
	UnterminatedString
)

type ScanError struct {
	Kind     ScanErrorKind
	Message  string
	Position Position
	Length   int // how many characters the error covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole input. Scanning stops at the first error;
// the parse of a unit is all-or-nothing, so there is nothing useful to
// recover into.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() && len(s.errors) == 0 {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case '+':
		s.addToken(PLUS)
	case '*':
		s.addToken(STAR)
	case '^':
		s.addToken(CARET)
	case '<':
		s.addToken(LESS)
	case '>':
		s.addToken(GREATER)

	// Operators and brackets with multi-character variants
	case ':':
		s.scanColonOperator()
	case '=':
		s.scanEqualOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '-':
		s.scanMinusOperator()
	case '[':
		s.scanLeftBracket()
	case ']':
		s.scanRightBracket()

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace

	// Line comments (skipped, never surfaced as tokens)
	case '#':
		s.skipLineComment()

	// String literals
	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanColonOperator() {
	if s.matchNext(':') {
		s.addToken(DOUBLE_COLON)
	} else {
		s.addToken(COLON)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(AND)
	} else {
		s.addToken(AMPERSAND)
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(OR)
	} else {
		s.addToken(PIPE)
	}
}

// The dialect has no binary or unary minus: "-" only occurs inside "->" and
// as the sign of a numeric literal.
func (s *Scanner) scanMinusOperator() {
	if s.matchNext('>') {
		s.addToken(ARROW)
		return
	}
	if isDigit(s.peek()) {
		s.scanNumber()
		return
	}
	s.reportError(LexError, "unexpected character: '-'")
}

func (s *Scanner) scanLeftBracket() {
	if s.matchNext('[') {
		s.addToken(DOUBLE_LEFT_BRACKET)
	} else {
		s.reportError(LexError, "unexpected character: '[' (decorations use '[[')")
	}
}

func (s *Scanner) scanRightBracket() {
	if s.matchNext(']') {
		s.addToken(DOUBLE_RIGHT_BRACKET)
	} else {
		s.reportError(LexError, "unexpected character: ']' (decorations use ']]')")
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(LexError, fmt.Sprintf("unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(kind ScanErrorKind, message string) {
	s.errors = append(s.errors, ScanError{
		Kind:     kind,
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Identifiers must start with a plain ASCII letter; underscores are only
// allowed in the continuation.
func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isHexLetter(c byte) bool {
	return ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	s.addToken(lookupIdentifier(text))
}

// scanNumber is entered after the first digit (or after a literal sign
// followed by a digit) has been consumed. It classifies decimal, hex and
// float forms. A digit run trailing into hex letters is consumed as a hex
// literal with no "0x" marker: the grammar leaves that shape ambiguous with
// plain decimals, and the scanner mirrors it rather than inventing a rule.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
		s.addToken(FLOAT_NUMBER)
		return
	}

	if s.peek() == 'x' || s.peek() == 'X' {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError(LexError, "invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}

	if isHexLetter(s.peek()) {
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}

	s.addToken(NUMBER)
}

// scanString reads a double-quoted literal. A doubled quote is the only
// escape: "" stands for a single quote character.
func (s *Scanner) scanString() {
	var value strings.Builder
	for !s.isAtEnd() {
		c := s.advance()
		if c != '"' {
			value.WriteByte(c)
			continue
		}
		if s.peek() == '"' {
			s.advance()
			value.WriteByte('"')
			continue
		}
		s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value.String(), Position: Position{
			Line: s.line, Column: s.startColumn, Offset: s.start},
		})
		return
	}
	s.reportError(UnterminatedString, "unterminated string literal")
}

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
