package formats

import "strconv"

// fbxTokenKind identifies a lexical token class in FBX ASCII text.
type fbxTokenKind int

const (
	tokIdent fbxTokenKind = iota
	tokNumber
	tokString
	tokColon
	tokComma
	tokStar
	tokOpenBrace
	tokCloseBrace
)

// fbxToken is one lexical token. Number tokens are validated with strconv
// at lex time, so a count pass and a fill pass over the same run can never
// disagree on how many literals it holds.
type fbxToken struct {
	kind fbxTokenKind
	text string
	line int
}

// lexFBX tokenizes FBX ASCII text in a single left-to-right scan.
// Comments (';' to end of line) and unrecognized bytes are skipped.
func lexFBX(text string) []fbxToken {
	var toks []fbxToken
	line := 1

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == ';':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == ':':
			toks = append(toks, fbxToken{tokColon, ":", line})
			i++
		case c == ',':
			toks = append(toks, fbxToken{tokComma, ",", line})
			i++
		case c == '*':
			toks = append(toks, fbxToken{tokStar, "*", line})
			i++
		case c == '{':
			toks = append(toks, fbxToken{tokOpenBrace, "{", line})
			i++
		case c == '}':
			toks = append(toks, fbxToken{tokCloseBrace, "}", line})
			i++
		case c == '"':
			start := i + 1
			i++
			for i < len(text) && text[i] != '"' && text[i] != '\n' {
				i++
			}
			toks = append(toks, fbxToken{tokString, text[start:i], line})
			if i < len(text) && text[i] == '"' {
				i++
			}
		case isNumberStart(text, i):
			start := i
			i++
			for i < len(text) && isNumberByte(text[i]) {
				i++
			}
			word := text[start:i]
			kind := tokNumber
			if _, err := strconv.ParseFloat(word, 64); err != nil {
				// Malformed literal such as "1e+" or a bare sign.
				kind = tokIdent
			}
			toks = append(toks, fbxToken{kind, word, line})
		case isIdentStart(c):
			start := i
			i++
			for i < len(text) && isIdentByte(text[i]) {
				i++
			}
			toks = append(toks, fbxToken{tokIdent, text[start:i], line})
		default:
			i++
		}
	}

	return toks
}

func isNumberStart(text string, i int) bool {
	c := text[i]
	if c >= '0' && c <= '9' {
		return true
	}
	if c == '+' || c == '-' || c == '.' {
		return i+1 < len(text) && (text[i+1] >= '0' && text[i+1] <= '9' || text[i+1] == '.')
	}
	return false
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
