package main

import (
	"fmt"
	"regexp"
)

// Lexing rules, tried in order at each non-whitespace position; the first
// match wins. A bounded rule additionally requires the character after the
// match to be whitespace or end-of-buffer, so that `."hi"` and `.s` stay
// single tokens while `12abc` falls through to the identifier rule instead
// of shedding a number.
type lexRule struct {
	kind    tokenKind
	pattern *regexp.Regexp
	bounded bool
}

var lexRules = []lexRule{
	{tokenComment, regexp.MustCompile(`^\([^)]*\)`), false},
	{tokenStartDef, regexp.MustCompile(`^:`), false},
	{tokenEndDef, regexp.MustCompile(`^;`), false},
	{tokenLabel, regexp.MustCompile(`^\[\S+\]`), true},
	{tokenPrint, regexp.MustCompile(`^\.([cds]|"[^"]*")?`), true},
	{tokenNumber, regexp.MustCompile(`^-?(0[xX][0-9a-fA-F]+|0[0-7]*|[1-9][0-9]*)`), true},
	{tokenString, regexp.MustCompile(`^"[^"]*"`), true},
	{tokenIdent, regexp.MustCompile(`^\S+`), true},
}

// lexTokens scans src into a dense token stream. Comments are dropped; they
// never reach the evaluator.
func lexTokens(src string) ([]token, error) {
	var tokens []token
	for pos := skipSpace(src, 0); pos < len(src); pos = skipSpace(src, pos) {
		tok, width, ok := lexTokenAt(src, pos)
		if !ok {
			end := pos
			for end < len(src) && !isSpace(src[end]) {
				end++
			}
			return nil, unrecognizedTokenError{pos, src[pos:end]}
		}
		if tok.kind != tokenComment {
			tokens = append(tokens, tok)
		}
		pos += width
	}
	return tokens, nil
}

func lexTokenAt(src string, pos int) (token, int, bool) {
	rest := src[pos:]
	for _, rule := range lexRules {
		loc := rule.pattern.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		end := loc[1]
		if rule.bounded && end < len(rest) && !isSpace(rest[end]) {
			continue
		}
		return token{rule.kind, rest[:end]}, end, true
	}
	return token{}, 0, false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func skipSpace(src string, pos int) int {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}
	return pos
}

type unrecognizedTokenError struct {
	pos   int
	slice string
}

func (ut unrecognizedTokenError) Error() string {
	return fmt.Sprintf("error at position %v: unrecognized token %v", ut.pos, ut.slice)
}
