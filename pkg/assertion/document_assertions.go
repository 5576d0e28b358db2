package assertion

import (
	"strings"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

var (
	cpfFirstWeights   = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	documentPunctuation = strings.NewReplacer(".", "", "-", "", "/", "", " ", "")
)

// ValidCPF checks a Brazilian individual taxpayer number, formatted
// ("943.754.516-29") or not ("94375451629").
func ValidCPF(value, message string) *notification.Notification {
	if !checksumValid(value, cpfLength, cpfFirstWeights, cpfSecondWeights) {
		return notification.New(notification.CodeCPFInvalid, message)
	}
	return nil
}

// ValidCNPJ checks a Brazilian company taxpayer number, formatted
// ("11.222.333/0001-81") or not.
func ValidCNPJ(value, message string) *notification.Notification {
	if !checksumValid(value, cnpjLength, cnpjFirstWeights, cnpjSecondWeights) {
		return notification.New(notification.CodeCNPJInvalid, message)
	}
	return nil
}

// checksumValid validates the two trailing mod 11 check digits of a
// document with size digits.
func checksumValid(value string, size int, first, second []int) bool {
	digits := []byte(documentPunctuation.Replace(strings.TrimSpace(value)))
	if len(digits) != size {
		return false
	}

	repeated := true
	for _, d := range digits {
		if d < '0' || d > '9' {
			return false
		}
		if d != digits[0] {
			repeated = false
		}
	}
	// All-equal sequences satisfy the arithmetic but are not issued.
	if repeated {
		return false
	}

	d1 := checkDigit(digits[:size-2], first)
	d2 := checkDigit(digits[:size-1], second)
	if digits[size-2] != d1 {
		return false
	}
	return digits[size-1] == d2
}

func checkDigit(digits []byte, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	if r := sum % 11; r >= 2 {
		return byte('0' + 11 - r)
	}
	return '0'
}
