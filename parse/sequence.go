// Package parse holds the token-sequence mechanics underneath the option
// parser: indexed access, in-place expansion of one token into several
// during preprocessing, and the single end-of-pass compaction that removes
// consumed tokens.
package parse

import (
	"errors"

	"github.com/rc-chuah/acclaim/util"
)

// ErrInvalidPosition is an error that occurs when a position outside the
// sequence is accessed
var ErrInvalidPosition = errors.New("invalid position")

// Sequence is the mutable token list owned by one parse invocation.
// Positions stay valid across Expand calls at or after the expanded
// index; consumed tokens are removed once, at the end, via Compact.
type Sequence struct {
	tokens []string
}

// NewSequence creates a Sequence over tokens, taking ownership of the
// slice.
func NewSequence(tokens []string) *Sequence {
	return &Sequence{
		tokens: tokens,
	}
}

// Len returns the number of tokens.
func (s *Sequence) Len() int {
	return len(s.tokens)
}

// Token returns the token at pos.
func (s *Sequence) Token(pos int) (string, error) {
	if pos < 0 || pos >= len(s.tokens) {
		return "", ErrInvalidPosition
	}

	return s.tokens[pos], nil
}

// Tokens returns the current token list. The slice is shared with the
// Sequence, not copied.
func (s *Sequence) Tokens() []string {
	return s.tokens
}

// Expand replaces the token at pos with one or more replacement tokens,
// in place. Tokens after pos shift right; tokens before pos keep their
// positions.
func (s *Sequence) Expand(pos int, replacement ...string) error {
	if pos < 0 || pos >= len(s.tokens) {
		return ErrInvalidPosition
	}

	if len(replacement) == 0 {
		s.tokens = util.DeleteIndices(s.tokens, map[int]struct{}{pos: {}})
		return nil
	}

	s.tokens[pos] = replacement[0]
	if len(replacement) > 1 {
		s.tokens = util.InsertSlice(s.tokens, pos+1, replacement[1:]...)
	}

	return nil
}

// Replace swaps the whole token list.
func (s *Sequence) Replace(tokens ...string) {
	s.tokens = tokens
}

// Compact removes every position in deleted in one pass, preserving the
// survivors' relative order. Positions computed before the call remain
// meaningful only until Compact runs, which is why it runs exactly once
// per parse.
func (s *Sequence) Compact(deleted map[int]struct{}) {
	s.tokens = util.DeleteIndices(s.tokens, deleted)
}
