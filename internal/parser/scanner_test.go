package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "import as var const type struct fn entry_point return true false vec3 customIdent"
	expected := []TokenType{
		IMPORT, AS, VAR, CONST, TYPE, STRUCT, FN, ENTRY_POINT,
		RETURN, TRUE, FALSE, IDENTIFIER, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 0x0 0x1F -7 3.14 3. -0.5"
	expected := []TokenType{
		NUMBER, NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER,
		NUMBER, FLOAT_NUMBER, FLOAT_NUMBER, FLOAT_NUMBER,
	}
	expectedLexemes := []string{"42", "0", "12345", "0x0", "0x1F", "-7", "3.14", "3.", "-0.5"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

// A digit run trailing into hex letters is consumed as an unmarked hex
// literal. The grammar leaves this shape ambiguous with decimals; the
// scanner commits to the hex reading.
func TestHexWithoutMarker(t *testing.T) {
	scanner := NewScanner("1f 2AB")
	tokens := scanner.ScanTokens()

	if tokens[0].Type != HEX_NUMBER || tokens[0].Lexeme != "1f" {
		t.Errorf("expected HEX_NUMBER '1f', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != HEX_NUMBER || tokens[1].Lexeme != "2AB" {
		t.Errorf("expected HEX_NUMBER '2AB', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "say ""hi""" ""`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != `say "hi"` {
		t.Errorf("expected doubled quotes to unescape, got %q", tokens[1].Lexeme)
	}
	if tokens[2].Type != STRING || tokens[2].Lexeme != "" {
		t.Errorf("expected empty STRING, got %s %q", tokens[2].Type, tokens[2].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner(`"no closing quote`)
	scanner.ScanTokens()

	if len(scanner.errors) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(scanner.errors))
	}
	if scanner.errors[0].Kind != UnterminatedString {
		t.Errorf("expected UnterminatedString, got kind %d", scanner.errors[0].Kind)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){},:;= == < > -> :: [[ ]] + * & && ^ | ||`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, COLON,
		SEMICOLON, EQUAL, EQUAL_EQUAL, LESS, GREATER, ARROW, DOUBLE_COLON,
		DOUBLE_LEFT_BRACKET, DOUBLE_RIGHT_BRACKET,
		PLUS, STAR, AMPERSAND, AND, CARET, PIPE, OR,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	input := "# leading comment\nvar # trailing comment\nx"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{VAR, IDENTIFIER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestScanningStopsAtFirstError(t *testing.T) {
	scanner := NewScanner("var @ var $")
	tokens := scanner.ScanTokens()

	if len(scanner.errors) != 1 {
		t.Fatalf("expected exactly 1 scan error, got %d", len(scanner.errors))
	}
	// Only the tokens before the error plus EOF survive.
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF token")
	}
}

func TestBareMinusIsALexError(t *testing.T) {
	scanner := NewScanner("a - b")
	scanner.ScanTokens()

	if len(scanner.errors) != 1 {
		t.Fatalf("expected 1 scan error for bare '-', got %d", len(scanner.errors))
	}
	if scanner.errors[0].Kind != LexError {
		t.Errorf("expected LexError, got kind %d", scanner.errors[0].Kind)
	}
}

func TestLeadingUnderscoreRejected(t *testing.T) {
	scanner := NewScanner("_private")
	scanner.ScanTokens()

	if len(scanner.errors) != 1 {
		t.Fatalf("expected 1 scan error for leading underscore, got %d", len(scanner.errors))
	}
}

func TestPositions(t *testing.T) {
	input := "var\n  x"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 || tokens[0].Position.Offset != 0 {
		t.Errorf("unexpected position for 'var': %+v", tokens[0].Position)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 || tokens[1].Position.Offset != 6 {
		t.Errorf("unexpected position for 'x': %+v", tokens[1].Position)
	}
}
