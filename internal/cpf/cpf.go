// Package cpf validates Brazilian CPF document numbers.
//
// A CPF is an 11 digit personal identifier whose final two digits are mod-11
// check digits computed over the preceding ones. Operator input usually
// carries the display mask ("529.982.247-25"); Normalize strips it before
// validation.
package cpf

import "strings"

// Validator implements the document-validity check consumed by the customer
// registry.
type Validator struct{}

// Valid reports whether document is a well-formed CPF. The document must
// already be normalized to bare digits.
func (Validator) Valid(document string) bool {
	return Valid(document)
}

// Normalize strips mask characters from document, keeping only digits.
func Normalize(document string) string {
	var b strings.Builder
	b.Grow(len(document))
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether document is exactly eleven digits with both check
// digits correct.
func Valid(document string) bool {
	if len(document) != 11 {
		return false
	}
	allSame := true
	for i := 0; i < len(document); i++ {
		if document[i] < '0' || document[i] > '9' {
			return false
		}
		if document[i] != document[0] {
			allSame = false
		}
	}
	// Same-digit sequences satisfy the checksum but are never issued.
	if allSame {
		return false
	}
	return checkDigit(document, 9) == int(document[9]-'0') &&
		checkDigit(document, 10) == int(document[10]-'0')
}

// checkDigit computes the mod-11 check digit over document[:n].
func checkDigit(document string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(document[i]-'0') * (n + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}
