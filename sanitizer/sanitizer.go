// FILE: lixenwraith/slogger/sanitizer/sanitizer.go
// Package sanitizer rewrites record text so that a record always renders as exactly one
// line, using bitwise filter flags to select runes and transform flags to rewrite them.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterLineBreak                       // Matches '\n' and '\r'
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformEscape                       // Escapes the character with backslashes (e.g., '\n', '\u0000')
	TransformSpace                        // Replaces the character with a single space
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw    PolicyPreset = "raw"    // Passthrough, text is written verbatim
	PolicyTxt    PolicyPreset = "txt"    // Hex-encode anything not printable
	PolicyEscape PolicyPreset = "escape" // Backslash-escape control characters
	PolicyFold   PolicyPreset = "fold"   // Fold line breaks into spaces, strip other control characters
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyTxt:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyEscape: {{filter: FilterControl, transform: TransformEscape}},
	PolicyFold: {
		{filter: FilterLineBreak, transform: TransformSpace},
		{filter: FilterControl, transform: TransformStrip},
	},
}

// filterOrder fixes the evaluation order of filter flags
var filterOrder = []uint64{FilterNonPrintable, FilterControl, FilterLineBreak}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterLineBreak:    func(r rune) bool { return r == '\n' || r == '\r' },
}

// ValidPolicy reports whether name is a known preset
func ValidPolicy(name string) bool {
	_, ok := policyRules[PolicyPreset(name)]
	return ok
}

// Sanitizer provides chainable text sanitization. Not safe for concurrent use.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether the sanitizer has no rules
func (s *Sanitizer) Passthrough() bool {
	return len(s.rules) == 0
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.AppendSanitized(s.buf[:0], data)
	return string(s.buf)
}

// AppendSanitized appends data to dst with all configured rules applied
func (s *Sanitizer) AppendSanitized(dst []byte, data string) []byte {
	if s.Passthrough() {
		return append(dst, data...)
	}

	for _, r := range data {
		matched := false
		// First match wins
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				dst = applyTransform(dst, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if (filterMask&flag) != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

// applyTransform appends r to buf rewritten by the transform
func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case (transformMask & TransformStrip) != 0:
		return buf

	case (transformMask & TransformSpace) != 0:
		return append(buf, ' ')

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = hex.AppendEncode(buf, runeBytes[:n])
		return append(buf, '>')

	case (transformMask & TransformEscape) != 0:
		switch r {
		case '\n':
			return append(buf, '\\', 'n')
		case '\r':
			return append(buf, '\\', 'r')
		case '\t':
			return append(buf, '\\', 't')
		case '\b':
			return append(buf, '\\', 'b')
		case '\f':
			return append(buf, '\\', 'f')
		default:
			if r < 0x20 || r == 0x7f {
				return append(buf, fmt.Sprintf("\\u%04x", r)...)
			}
			return utf8.AppendRune(buf, r)
		}
	}
	return utf8.AppendRune(buf, r)
}
