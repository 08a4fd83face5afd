package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset alphabet blocks. The characters and their in-block order are part of
// the published output format: reordering any of them changes every derived
// password that selects the block.
const (
	SmallLetters   = "abcdefghijklmnopqrstuvwxyz"
	CapitalLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers        = "0123456789"
	SpecialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Preset describes one selectable alphabet block.
type Preset struct {
	Index    int
	Name     string
	Alphabet string
}

// Presets returns the selectable alphabet blocks in index order.
func Presets() []Preset {
	return []Preset{
		{Index: 0, Name: "small letters", Alphabet: SmallLetters},
		{Index: 1, Name: "capital letters", Alphabet: CapitalLetters},
		{Index: 2, Name: "numbers", Alphabet: Numbers},
		{Index: 3, Name: "special characters", Alphabet: SpecialChars},
	}
}

var presetBlocks = map[int]string{
	0: SmallLetters,
	1: CapitalLetters,
	2: Numbers,
	3: SpecialChars,
}

// CharSet is the alphabet a derived password draws from: the concatenation of
// the selected preset blocks in caller-supplied order. Duplicate selections
// duplicate the block, and that is observable in the output; the alphabet is
// never deduplicated or canonicalised.
type CharSet struct {
	alphabet string
}

// NewCharSet builds a character set from preset indexes.
func NewCharSet(presets []int) (CharSet, error) {
	if len(presets) == 0 {
		return CharSet{}, ErrEmptyCharSet
	}

	var alphabet strings.Builder
	for _, preset := range presets {
		block, ok := presetBlocks[preset]
		if !ok {
			return CharSet{}, fmt.Errorf("%w: %d", ErrUnknownPreset, preset)
		}
		alphabet.WriteString(block)
	}

	return CharSet{alphabet: alphabet.String()}, nil
}

// ParseCharSet builds a character set from a comma-separated list of preset
// indexes, e.g. "0,1,2,3".
func ParseCharSet(value string) (CharSet, error) {
	var presets []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		preset, err := strconv.Atoi(field)
		if err != nil {
			return CharSet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, field)
		}
		presets = append(presets, preset)
	}
	return NewCharSet(presets)
}

// Alphabet returns the concatenated alphabet.
func (c CharSet) Alphabet() string {
	return c.alphabet
}

// String returns the concatenated alphabet.
func (c CharSet) String() string {
	return c.alphabet
}
