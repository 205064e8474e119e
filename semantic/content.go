package semantic

import "regexp"

// contentPattern pairs a field name with the regex that recognizes it. The
// table is priority-ordered and evaluated first-match-wins.
type contentPattern struct {
	field string
	re    *regexp.Regexp
}

var contentPatterns = []contentPattern{
	// $1,299.00 / €45 / £ 12.50
	{"price", regexp.MustCompile(`^[-+]?[$€£¥]\s?\d[\d,]*(\.\d+)?$`)},
	// +120.50 / -1,000
	{"amount", regexp.MustCompile(`^[-+]\d[\d,]*(\.\d+)?$`)},
	{"cardBrand", regexp.MustCompile(`(?i)^(visa|mastercard|master card|amex|american express|discover|diners club|jcb|unionpay|maestro)$`)},
	// •••• 4242 / **** 4242 / xxxx4242
	{"cardLastDigits", regexp.MustCompile(`^[•*xX]{2,}[\s-]?\d{4}$`)},
	// Mar 14 / March 14, 2026
	{"date", regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(,\s*\d{4})?$`)},
	// +1 (555) 123-4567 / 555-123-4567
	{"phone", regexp.MustCompile(`^\+?\(?\d{1,4}\)?[\d\s().-]{5,}\d$`)},
	// 85% / -3.2%
	{"percentage", regexp.MustCompile(`^[-+]?\d+(\.\d+)?%$`)},
}

// ContentField recognizes what kind of value a text node holds and returns
// the field name downstream generators should use for it, or "" when no
// pattern matches.
func ContentField(text string) string {
	for _, p := range contentPatterns {
		if p.re.MatchString(text) {
			return p.field
		}
	}
	return ""
}
