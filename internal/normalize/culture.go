package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/fr_FR"
)

var cultureFactories = map[string]func() locales.Translator{
	"en_us": en_US.New,
	"en_au": en_AU.New,
	"en_gb": en_GB.New,
	"fr_fr": fr_FR.New,
	"de_de": de_DE.New,
}

// Culture holds the locale data exact-format parsing needs: localized month
// and weekday names, the short-date separator, and numeric date order.
// A Culture is immutable and safe for concurrent use.
type Culture struct {
	id         string
	months     map[string]time.Month
	weekdays   map[string]time.Weekday
	separator  string
	monthFirst bool
}

// defaultCulture is built straight from its translator; LookupCulture
// returns it for an empty id.
var defaultCulture = newCulture(en_US.New())

// DefaultCulture returns the en-US culture.
func DefaultCulture() *Culture { return defaultCulture }

// SupportedCultures lists the culture ids LookupCulture accepts.
func SupportedCultures() []string {
	return []string{"en-US", "en-AU", "en-GB", "fr-FR", "de-DE"}
}

// LookupCulture resolves an id such as "en-US" or "fr_FR". An empty id
// resolves to the default culture.
func LookupCulture(id string) (*Culture, error) {
	if strings.TrimSpace(id) == "" {
		return defaultCulture, nil
	}
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", "_"))
	factory, ok := cultureFactories[key]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown culture %q (supported: %s)", id, strings.Join(SupportedCultures(), ", ")))
	}
	return newCulture(factory()), nil
}

func newCulture(tr locales.Translator) *Culture {
	c := &Culture{
		id:       tr.Locale(),
		months:   make(map[string]time.Month, 48),
		weekdays: make(map[string]time.Weekday, 28),
	}
	for i, name := range tr.MonthsWide() {
		c.addMonth(name, time.Month(i+1))
	}
	for i, name := range tr.MonthsAbbreviated() {
		c.addMonth(name, time.Month(i+1))
	}
	for i, name := range tr.WeekdaysWide() {
		c.addWeekday(name, time.Weekday(i))
	}
	for i, name := range tr.WeekdaysAbbreviated() {
		c.addWeekday(name, time.Weekday(i))
	}

	// 22 Nov 2006 has distinct day and month digits, so their positions in
	// the short form give the numeric order and the separator.
	short := tr.FmtDateShort(time.Date(2006, time.November, 22, 0, 0, 0, 0, time.UTC))
	c.monthFirst = strings.Index(short, "11") < strings.Index(short, "22")
	c.separator = "/"
	for _, r := range short {
		if !unicode.IsDigit(r) {
			c.separator = string(r)
			break
		}
	}
	return c
}

func (c *Culture) addMonth(name string, m time.Month) {
	if name == "" {
		return
	}
	c.months[Fold(name)] = m
	c.months[Fold(strings.TrimSuffix(name, "."))] = m
}

func (c *Culture) addWeekday(name string, d time.Weekday) {
	if name == "" {
		return
	}
	c.weekdays[Fold(name)] = d
	c.weekdays[Fold(strings.TrimSuffix(name, "."))] = d
}

// ID returns the locale identifier, e.g. "en_US".
func (c *Culture) ID() string { return c.id }

// MonthFirst reports whether the culture writes numeric dates month-first.
func (c *Culture) MonthFirst() bool { return c.monthFirst }

// DateSeparator returns the separator the culture uses in short dates.
func (c *Culture) DateSeparator() string { return c.separator }

// nameForm selects the English spelling emitted for a localized name so that
// it matches the layout token (Jan vs January, Mon vs Monday).
type nameForm struct {
	wideMonth   bool
	wideWeekday bool
}

// canonicalize rewrites localized month and weekday names in s into the
// English spellings Go layouts understand, and upper-cases am/pm markers.
// Anything else is copied through unchanged.
func (c *Culture) canonicalize(s string, form nameForm) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		j := i
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if !unicode.IsLetter(r) {
				break
			}
			j += size
		}
		word, end := s[i:j], j
		if j < len(s) && s[j] == '.' {
			if _, ok := c.lookupName(s[i : j+1]); ok {
				word, end = s[i:j+1], j+1
			}
		}
		if repl, ok := c.replacement(word, form); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(s[i:j])
			end = j
		}
		i = end
	}
	return b.String()
}

func (c *Culture) lookupName(word string) (string, bool) {
	f := Fold(word)
	if _, ok := c.months[f]; ok {
		return f, true
	}
	if _, ok := c.weekdays[f]; ok {
		return f, true
	}
	return f, false
}

func (c *Culture) replacement(word string, form nameForm) (string, bool) {
	f := Fold(word)
	switch f {
	case "am", "pm":
		return strings.ToUpper(f), true
	}
	if m, ok := c.months[f]; ok {
		if form.wideMonth {
			return m.String(), true
		}
		return m.String()[:3], true
	}
	if d, ok := c.weekdays[f]; ok {
		if form.wideWeekday {
			return d.String(), true
		}
		return d.String()[:3], true
	}
	return "", false
}
