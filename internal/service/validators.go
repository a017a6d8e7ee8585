package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailPattern      = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_.-]+@[\p{L}\p{M}\p{N}_.-]+\.[a-zA-Z]{2,}$`)
	experiencePattern = regexp.MustCompile(`[0-9]+\.?[0-9]*`)
)

const minPhoneDigits = 7

// ValidateEmail revisa solo la forma local@dominio.tld, sin DNS.
// Local y dominio aceptan letras y digitos Unicode; el TLD es ASCII.
func ValidateEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// ValidatePhone acepta cualquier separador mientras queden al menos 7 digitos.
func ValidatePhone(value string) bool {
	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

// ParseExperienceYears toma el primer numero que aparezca en el texto.
// No hay control de rango.
func ParseExperienceYears(value string) (float64, bool) {
	match := experiencePattern.FindString(value)
	if match == "" {
		return 0, false
	}
	years, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return years, true
}
