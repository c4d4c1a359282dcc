package normalize

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/gyeh/tagstamp/internal/model"
)

// DefaultFormats are the custom patterns tried before free-form parsing.
// Patterns use the day/month/year letter syntax common to clinical
// integration engines (dd, MM, yyyy, HH, hh, mm, ss, fff, tt, zzz).
var DefaultFormats = []string{
	"MM/dd/yyyy hh:mm:ss",
	"MM/dd/yyyy hh:mm:ss tt",
	"MM/dd/yyyy HH:mm:ss zzz",
	model.DisplayFormat,
}

// FormatCatalog is an ordered, compiled list of exact-match patterns.
// It is immutable once built.
type FormatCatalog struct {
	formats []compiledFormat
}

type compiledFormat struct {
	pattern string
	// parts are Go layout fragments split at each date-separator specifier;
	// they are joined with the culture's separator at parse time.
	parts []string
	names nameForm
}

// NewFormatCatalog compiles patterns in order. A pattern that cannot be
// expressed as a Go layout is a configuration defect and fails the whole catalog.
func NewFormatCatalog(patterns ...string) (*FormatCatalog, error) {
	c := &FormatCatalog{formats: make([]compiledFormat, 0, len(patterns))}
	for _, p := range patterns {
		cf, err := compilePattern(p)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid date format %q", p)).
				WithCause(err)
		}
		c.formats = append(c.formats, cf)
	}
	return c, nil
}

// Patterns returns the source patterns in try order.
func (c *FormatCatalog) Patterns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.formats))
	for i, f := range c.formats {
		out[i] = f.pattern
	}
	return out
}

// Len returns the number of compiled patterns.
func (c *FormatCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.formats)
}

// Layout translates a single pattern into a Go time layout for culture.
// Useful for formatting output with the same pattern syntax.
func Layout(pattern string, culture *Culture) (string, error) {
	cf, err := compilePattern(pattern)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid date format %q", pattern)).
			WithCause(err)
	}
	if culture == nil {
		culture = defaultCulture
	}
	return cf.layout(culture), nil
}

func (f compiledFormat) layout(culture *Culture) string {
	return strings.Join(f.parts, culture.separator)
}

// Fragments of literal text that Go would read as layout elements.
var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07", "_"}

func compilePattern(pattern string) (compiledFormat, error) {
	cf := compiledFormat{pattern: pattern}
	if strings.TrimSpace(pattern) == "" {
		return cf, fmt.Errorf("empty pattern")
	}

	var b strings.Builder
	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		ch := rs[i]
		n := 1
		for i+n < len(rs) && rs[i+n] == ch {
			n++
		}

		switch ch {
		case 'y':
			if n <= 2 {
				b.WriteString("06")
			} else {
				b.WriteString("2006")
			}
		case 'M':
			switch n {
			case 1:
				b.WriteString("1")
			case 2:
				b.WriteString("01")
			case 3:
				b.WriteString("Jan")
			default:
				b.WriteString("January")
				cf.names.wideMonth = true
			}
		case 'd':
			switch n {
			case 1:
				b.WriteString("2")
			case 2:
				b.WriteString("02")
			case 3:
				b.WriteString("Mon")
			default:
				b.WriteString("Monday")
				cf.names.wideWeekday = true
			}
		case 'H':
			b.WriteString("15")
		case 'h':
			if n == 1 {
				b.WriteString("3")
			} else {
				b.WriteString("03")
			}
		case 'm':
			if n == 1 {
				b.WriteString("4")
			} else {
				b.WriteString("04")
			}
		case 's':
			if n == 1 {
				b.WriteString("5")
			} else {
				b.WriteString("05")
			}
		case 'f', 'F':
			if n > 9 {
				return cf, fmt.Errorf("fractional seconds deeper than 9 digits")
			}
			if prev := lastByte(&b); prev != '.' && prev != ',' {
				return cf, fmt.Errorf("fractional seconds must follow '.' or ','")
			}
			digit := "0"
			if ch == 'F' {
				digit = "9"
			}
			b.WriteString(strings.Repeat(digit, n))
		case 't':
			if n == 1 {
				return cf, fmt.Errorf("single-letter am/pm designator is not supported")
			}
			b.WriteString("PM")
		case 'z':
			if n <= 2 {
				b.WriteString("-07")
			} else {
				b.WriteString("-07:00")
			}
		case 'K':
			b.WriteString(strings.Repeat("Z07:00", n))
		case 'g':
			return cf, fmt.Errorf("era designator is not supported")
		case '/':
			for k := 0; k < n; k++ {
				cf.parts = append(cf.parts, b.String())
				b.Reset()
			}
		case '%':
			// single-specifier marker, no output
		case '\'', '"':
			end := i + 1
			for end < len(rs) && rs[end] != ch {
				end++
			}
			if end == len(rs) {
				return cf, fmt.Errorf("unterminated quoted literal")
			}
			if err := writeLiteral(&b, string(rs[i+1:end])); err != nil {
				return cf, err
			}
			i = end + 1
			continue
		case '\\':
			if i+1 == len(rs) {
				return cf, fmt.Errorf("trailing escape")
			}
			if err := writeLiteral(&b, string(rs[i+1])); err != nil {
				return cf, err
			}
			i += 2
			continue
		default:
			if err := writeLiteral(&b, strings.Repeat(string(ch), n)); err != nil {
				return cf, err
			}
		}
		i += n
	}
	cf.parts = append(cf.parts, b.String())
	return cf, nil
}

func writeLiteral(b *strings.Builder, lit string) error {
	for _, r := range lit {
		if r >= '0' && r <= '9' {
			return fmt.Errorf("literal %q contains a digit", lit)
		}
	}
	for _, w := range layoutWords {
		if strings.Contains(lit, w) {
			return fmt.Errorf("literal %q collides with layout element %q", lit, w)
		}
	}
	b.WriteString(lit)
	return nil
}

func lastByte(b *strings.Builder) byte {
	s := b.String()
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}
