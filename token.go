package forth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokenEmpty tokenKind = iota
	tokenNumber
	tokenBegin
	tokenEnd
	tokenWord
)

var tokenKindNames = [...]string{
	tokenEmpty:  "empty",
	tokenNumber: "number",
	tokenBegin:  "begin",
	tokenEnd:    "end",
	tokenWord:   "word",
}

func (kind tokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return "invalid"
}

func isDelim(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }

// tokenize splits input at every space or control rune; runs of delimiters
// produce empty tokens rather than being collapsed. Tokens keep the exact
// bytes of input, even where it is not valid UTF-8.
func tokenize(input string) []string {
	var tokens []string
	start := 0
	for i, r := range input {
		if isDelim(r) {
			tokens = append(tokens, input[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	if start < len(input) || len(tokens) > 0 {
		tokens = append(tokens, input[start:])
	}
	return tokens
}

// classify returns the kind of token, along with its value when it is a
// number literal.
func classify(token string) (tokenKind, int) {
	switch token {
	case "":
		return tokenEmpty, 0
	case ":":
		return tokenBegin, 0
	case ";":
		return tokenEnd, 0
	}
	if n, err := strconv.ParseInt(token, 10, strconv.IntSize); err == nil {
		return tokenNumber, int(n)
	}
	return tokenWord, 0
}

// foldName lower cases a word name; unlike strings.ToLower, bytes that are not
// valid UTF-8 are kept rather than replaced with U+FFFD.
func foldName(name string) string {
	if utf8.ValidString(name) {
		return strings.ToLower(name)
	}
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); {
		r, n := utf8.DecodeRuneInString(name[i:])
		if r == utf8.RuneError && n == 1 {
			sb.WriteByte(name[i])
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		i += n
	}
	return sb.String()
}
