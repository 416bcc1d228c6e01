package bwt

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8          = errors.New("bwt: invalid UTF-8 encoding in input text")
	ErrTerminatorPresent    = errors.New("bwt: terminator occurs inside the text")
	ErrTerminatorNotMinimal = errors.New("bwt: text contains a byte that sorts below the terminator")
)

// DefaultTerminator is the sentinel Preparer appends when none is configured.
const DefaultTerminator = '$'

// Preparer canonicalizes text into valid transform input: a byte string
// ending in a terminator that is unique and sorts below every other byte.
// Transform does not check this convention itself; inputs that violate it
// may not be invertible.
type Preparer struct {
	terminator byte
	normalize  bool
}

func NewPreparer() *Preparer {
	return &Preparer{
		terminator: DefaultTerminator,
		normalize:  true,
	}
}

// Skips the normalization of the text with NFC.
func (p *Preparer) SkipNormalization() *Preparer {
	p.normalize = false
	return p
}

// WithTerminator changes the appended sentinel. Pick a byte below the text's
// alphabet; 0x00 works for any text that contains no NUL bytes.
func (p *Preparer) WithTerminator(b byte) *Preparer {
	p.terminator = b
	return p
}

// Prepare validates and canonicalizes s and appends the terminator if it is
// not already the final byte.
func (p *Preparer) Prepare(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	if p.normalize {
		s = norm.NFC.String(s)
	}

	text := []byte(s)
	body := text
	if n := len(text); n > 0 && text[n-1] == p.terminator {
		body = text[:n-1]
	}
	for _, c := range body {
		if c == p.terminator {
			return nil, ErrTerminatorPresent
		}
		if c < p.terminator {
			return nil, ErrTerminatorNotMinimal
		}
	}

	if len(body) == len(text) {
		text = append(text, p.terminator)
	}
	return text, nil
}
