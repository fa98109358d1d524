package pricing

import (
	"strconv"
	"strings"
)

// Clause renders the quantity condition of a statement in English. Equal
// reads "Equal to N items", with a leading capital.
func Clause(op Operator, quantity int) string {
	n := strconv.Itoa(quantity)
	switch op {
	case Greater:
		return "more than " + n + " items"
	case GreaterOrEqual:
		return n + " or more items"
	case Less:
		return "less than " + n + " items"
	case LessOrEqual:
		return n + " or less items"
	case Equal:
		return "Equal to " + n + " items"
	}
	return ""
}

// Sentence renders s as "<clause> is $<price>".
func (s Statement) Sentence() string {
	return Clause(s.Operator, s.Quantity) + " is " + FormatUSD(s.Price)
}

// Describe renders a raw wire statement as a priced sentence. Malformed
// statements render as the empty string.
func Describe(raw string) string {
	s, ok := Parse(raw)
	if !ok {
		return ""
	}
	return s.Sentence()
}

// FormatUSD formats cents as US dollars with thousands separators and two
// decimals, e.g. 123450 -> "$1,234.50".
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	digits := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 5)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(digits[:rem])
	for i := rem; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	frac := cents % 100
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// DigitsOnly drops every character of s that is not an ASCII digit. Quantity
// edits pass through it before reaching the tier list.
func DigitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// DecimalOnly keeps digits and the first decimal point of s.
func DecimalOnly(s string) string {
	var b strings.Builder
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && !dot:
			dot = true
			b.WriteByte(c)
		}
	}
	return b.String()
}
