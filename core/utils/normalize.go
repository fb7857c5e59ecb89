package utils

import "strings"

// NormalizeName returns the comparable form of an item name.
// Names are matched after trimming surrounding whitespace only; case is significant.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// CleanSKU strips whitespace and the surrounding quote characters that some
// e-commerce exports wrap around SKUs.
func CleanSKU(sku string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(sku), `"`))
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// surrounding whitespace and an Excel formula wrapper (="...").
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// CleanText removes leading whitespace and an Excel formula wrapper (="...")
// from a text cell. Trailing whitespace is part of the exported value and is
// kept; lookups compare names through NormalizeName.
func CleanText(s string) string {
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// HeaderKey returns the case-insensitive lookup key for a column header.
func HeaderKey(h string) string {
	return strings.ToLower(CleanCell(strings.TrimPrefix(h, "\ufeff")))
}
