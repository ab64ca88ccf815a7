package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCPFLength         = errors.New("cpf_length")
	ErrCPFRepeatedDigits = errors.New("cpf_repeated_digits")
	ErrCPFCheckDigit1    = errors.New("cpf_check_digit_1")
	ErrCPFCheckDigit2    = errors.New("cpf_check_digit_2")
)

// OnlyDigits remove tudo que não for dígito.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF confere os dois dígitos verificadores do CPF.
//
// Sequências com os 11 dígitos iguais (111.111.111-11 etc.) passam na
// aritmética mas são registros degenerados, então rejeitamos antes.
func ValidateCPF(cpf string) error {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return ErrCPFLength
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return ErrCPFRepeatedDigits
	}

	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') {
		return ErrCPFCheckDigit1
	}
	if cpfCheckDigit(digits, 10) != int(digits[10]-'0') {
		return ErrCPFCheckDigit2
	}

	return nil
}

// cpfCheckDigit calcula o dígito verificador sobre digits[0:pos] com pesos
// (pos+1)..2. Resto < 2 vira zero.
func cpfCheckDigit(digits string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}

	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check
}

// FormatCPF aplica a máscara de exibição 000.000.000-00.
func FormatCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s",
		digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}
