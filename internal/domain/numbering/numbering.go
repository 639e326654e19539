// Package numbering derives sequential invoice numbers of the form
// "<year>-<sequence>" (e.g. 2025-1001).
package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glanzwerk/rechnung-api/internal/domain"
)

// FirstSequence is the sequence assigned to the very first invoice of a lineage.
const FirstSequence = 1001

// Next derives the next invoice number from the most recently issued one.
//
// If latest is empty (no invoices exist yet) it returns "<year>-1001".
// Otherwise the stored sequence is incremented and stamped with the current
// year, zero-padded to at least four digits (1002 -> "2025-1002",
// 9999 -> "2025-10000").
//
// The sequence deliberately does NOT reset when the year changes: the year
// part is purely cosmetic and the sequence always continues from the last
// issued invoice regardless of its stored year. This reproduces the behavior
// the shop has invoiced under so far; resetting per year would renumber an
// established lineage.
func Next(latest string, year int) (string, error) {
	if latest == "" {
		return fmt.Sprintf("%d-%d", year, FirstSequence), nil
	}
	_, seq, err := Parse(latest)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%04d", year, seq+1), nil
}

// Parse splits an invoice number into its year and sequence parts.
// Returns domain.ErrBadNumberFormat if the separator is missing or either
// part is not an unsigned decimal number. Atoi alone would accept signed
// parts, so a tampered "2025--5" must be rejected before it reaches Next.
func Parse(number string) (year, sequence int, err error) {
	yearPart, seqPart, ok := strings.Cut(number, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q has no separator", domain.ErrBadNumberFormat, number)
	}
	if !allDigits(yearPart) {
		return 0, 0, fmt.Errorf("%w: year part of %q is not numeric", domain.ErrBadNumberFormat, number)
	}
	if !allDigits(seqPart) {
		return 0, 0, fmt.Errorf("%w: sequence part of %q is not numeric", domain.ErrBadNumberFormat, number)
	}
	year, err = strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year part of %q is not numeric", domain.ErrBadNumberFormat, number)
	}
	sequence, err = strconv.Atoi(seqPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: sequence part of %q is not numeric", domain.ErrBadNumberFormat, number)
	}
	return year, sequence, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
