package renderer

import (
	"fmt"
	"strings"

	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Markdown lays an estimate out as a GitHub-flavoured markdown document. It is
// the shared source of the HTML artifact and of the terminal preview.
func Markdown(e entities.Estimate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Estimate for %s\n\n", escape(e.Client.Name))
	fmt.Fprintf(&b, "Date: %s  \nEstimate #: %s\n\n", e.CreatedAt.Format("January 2, 2006"), shortID(e.ID))

	b.WriteString("## From\n\n")
	writeParty(&b, e.Contractor)
	b.WriteString("## Bill to\n\n")
	writeParty(&b, e.Client)

	b.WriteString("| Item | Qty | Unit price | Amount |\n")
	b.WriteString("|------|----:|-----------:|-------:|\n")
	for _, it := range e.Items {
		name := it.Name
		if strings.TrimSpace(name) == "" {
			name = "(unnamed item)"
		}
		amount := decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice))
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escape(name), Quantity(it.Quantity), Money(decimal.NewFromFloat(it.UnitPrice)), Money(amount))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "**Subtotal:** %s  \n", Money(decimal.NewFromFloat(e.Subtotal)))
	fmt.Fprintf(&b, "**Tax (%s%%):** %s  \n", decimal.NewFromFloat(e.TaxRatePercent).String(), Money(decimal.NewFromFloat(e.Tax)))
	fmt.Fprintf(&b, "**Total:** %s\n", Money(decimal.NewFromFloat(e.Total)))
	return b.String()
}

func writeParty(b *strings.Builder, p entities.Party) {
	lines := []string{"**" + escape(p.Name) + "**"}
	for _, v := range []string{p.Company, p.Address, p.Phone, p.Email} {
		if strings.TrimSpace(v) != "" {
			lines = append(lines, escape(v))
		}
	}
	b.WriteString(strings.Join(lines, "  \n"))
	b.WriteString("\n\n")
}

// Money formats an amount as dollars with thousands separators, e.g. $1,234.50.
func Money(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	fixed := v.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return sign + "$" + grouped.String() + "." + frac
}

// Quantity drops trailing zeros: 2 -> "2", 1.50 -> "1.5".
func Quantity(q float64) string {
	return decimal.NewFromFloat(q).String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var mdEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return mdEscaper.Replace(strings.TrimSpace(s))
}
