package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_lexTokens(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []token
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\r\n", nil},

		{"number", "42", []token{{tokenNumber, "42"}}},
		{"negative number", "-42", []token{{tokenNumber, "-42"}}},
		{"hex", "0x2a", []token{{tokenNumber, "0x2a"}}},
		{"octal", "017", []token{{tokenNumber, "017"}}},
		{"lone zero", "0", []token{{tokenNumber, "0"}}},
		{"glued number is an identifier", "12abc", []token{{tokenIdent, "12abc"}}},
		{"leading zero decimal is an identifier", "09", []token{{tokenIdent, "09"}}},
		{"lone minus is an identifier", "-", []token{{tokenIdent, "-"}}},

		{"punctuation needs no boundary", ":foo", []token{
			{tokenStartDef, ":"},
			{tokenIdent, "foo"},
		}},
		{"semicolon before word", ";x", []token{
			{tokenEndDef, ";"},
			{tokenIdent, "x"},
		}},
		{"glued semicolon stays in the identifier", "dup;", []token{
			{tokenIdent, "dup;"},
		}},

		{"label", "[top]", []token{{tokenLabel, "[top]"}}},
		{"label needs boundary", "[a]x", []token{{tokenIdent, "[a]x"}}},

		{"bare print", ".", []token{{tokenPrint, "."}}},
		{"print char", ".c", []token{{tokenPrint, ".c"}}},
		{"print debug", ".d", []token{{tokenPrint, ".d"}}},
		{"print stack string", ".s", []token{{tokenPrint, ".s"}}},
		{"fused print literal", `."hi there"`, []token{{tokenPrint, `."hi there"`}}},
		{"print glued to word is an identifier", ".foo", []token{{tokenIdent, ".foo"}}},

		{"string", `"hi"`, []token{{tokenString, `"hi"`}}},
		{"string with spaces", `"a b c"`, []token{{tokenString, `"a b c"`}}},
		{"empty string", `""`, []token{{tokenString, `""`}}},

		{"comment dropped", "( hi ) 1", []token{{tokenNumber, "1"}}},
		{"comment needs no boundary", "(c)1", []token{{tokenNumber, "1"}}},

		{"operators lex as identifiers", "<> <= >=", []token{
			{tokenIdent, "<>"},
			{tokenIdent, "<="},
			{tokenIdent, ">="},
		}},

		{"program", `: foo 1 + ; 41 foo .`, []token{
			{tokenStartDef, ":"},
			{tokenIdent, "foo"},
			{tokenNumber, "1"},
			{tokenIdent, "+"},
			{tokenEndDef, ";"},
			{tokenNumber, "41"},
			{tokenIdent, "foo"},
			{tokenPrint, "."},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := lexTokens(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tokens)
		})
	}
}

func Test_unrecognizedTokenError(t *testing.T) {
	err := unrecognizedTokenError{12, "???"}
	assert.EqualError(t, err, "error at position 12: unrecognized token ???")
}

func Test_token_payloads(t *testing.T) {
	assert.Equal(t, "top", token{tokenLabel, "[top]"}.labelName())
	assert.Equal(t, "a b", token{tokenString, `"a b"`}.stringPayload())
	assert.Equal(t, "s", token{tokenPrint, ".s"}.printArg())
	assert.Equal(t, "", token{tokenPrint, "."}.printArg())
	assert.Equal(t, `"hi"`, token{tokenPrint, `."hi"`}.printArg())
}
