package production

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/comalice/calcx"
)

// Formatter renders raw operand text for display: the integer part gets the
// locale's digit grouping, the fractional digits are kept exactly as typed.
type Formatter struct {
	printer *message.Printer
	decimal string
}

// NewFormatter creates a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	return &Formatter{printer: p, decimal: decimalSeparator(p)}
}

// decimalSeparator is whatever the printer puts between the digits of 1.5.
func decimalSeparator(p *message.Printer) string {
	for _, r := range p.Sprint(number.Decimal(1.5)) {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return "."
}

// Format returns the display text for operand; an absent operand renders as
// the empty string.
func (f *Formatter) Format(operand string) string {
	if operand == "" {
		return ""
	}
	integer, fraction, hasFraction := strings.Cut(operand, ".")
	out := f.formatInteger(integer)
	if hasFraction {
		out += f.decimal + fraction
	}
	return out
}

func (f *Formatter) formatInteger(text string) string {
	sign := ""
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		sign, text = "-", rest
	}
	if text == "" {
		return sign + f.printer.Sprint(number.Decimal(0))
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return sign + text
	}
	return sign + f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Display is the two-line calculator screen.
type Display struct {
	// Previous is the left operand followed by the pending operation symbol.
	Previous string `json:"previous" yaml:"previous"`
	Current  string `json:"current" yaml:"current"`
}

// Render builds the Display for s.
func (f *Formatter) Render(s calcx.State) Display {
	d := Display{Current: f.Format(s.CurrentOperand)}
	prev := f.Format(s.PreviousOperand)
	switch {
	case prev != "" && s.HasOperation():
		d.Previous = prev + " " + string(s.Operation)
	case prev != "":
		d.Previous = prev
	}
	return d
}

func (d Display) String() string {
	return d.Previous + "\n" + d.Current
}
