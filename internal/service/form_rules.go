package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/telmart/console_api/internal/models"
)

// Validation messages surfaced to the seller. The submit control is
// disabled while any of these is active.
const (
	reasonMOQ           = "MOQ must be less than or equal to Stock"
	reasonExpiryMissing = "Expiry time is required for Flash Deal"
	reasonExpiryInvalid = "Please select a valid date and time"
)

// Verdict is the validation gate's result for a form state.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateForm recomputes the cross-field invariants over a form state.
// It runs synchronously after every mutation; the required-specification
// rule is deliberately excluded here because it is checked only at
// submit time.
func ValidateForm(f *models.ProductFormState) Verdict {
	if f.PurchaseType == models.PurchaseTypePartial {
		moq := parseIntField(f.MOQ)
		stock := parseIntField(f.Stock)
		if moq > stock {
			return Verdict{Valid: false, Reason: reasonMOQ}
		}
	}

	if f.IsFlashDeal {
		if strings.TrimSpace(f.ExpiryTime) == "" {
			return Verdict{Valid: false, Reason: reasonExpiryMissing}
		}
		if _, ok := parseExpiryTime(f.ExpiryTime); !ok {
			return Verdict{Valid: false, Reason: reasonExpiryInvalid}
		}
	}

	return Verdict{Valid: true}
}

// ValidateVariantRow applies the MOQ rule to one bulk-entry row. Rows
// inherit the base form's purchase type and flash-deal settings.
func ValidateVariantRow(row *models.VariantRow, purchaseType models.PurchaseType) Verdict {
	if purchaseType == models.PurchaseTypePartial {
		if parseIntField(row.MOQ) > parseIntField(row.Stock) {
			return Verdict{Valid: false, Reason: reasonMOQ}
		}
	}
	return Verdict{Valid: true}
}

// parseExpiryTime accepts the date-time formats the console's pickers
// emit. ISO 8601 first, then the HTML datetime-local shape and plain dates.
func parseExpiryTime(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseIntField converts a filtered numeric input to an int. Inputs pass
// through filterInteger before storage, so failures only happen on empty
// strings, which count as zero.
func parseIntField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseFloatField converts a filtered decimal input to a float64.
func parseFloatField(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// formatIntField renders a backend integer as form input text. Zero
// renders empty so prefilled forms show blank inputs, not "0".
func formatIntField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// formatFloatField renders a backend price as form input text.
func formatFloatField(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// filterInteger keeps only digit characters. Applied to stock and MOQ on
// every edit.
func filterInteger(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// filterDecimal keeps digits and at most one decimal point. Applied to
// price on every edit.
func filterDecimal(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
