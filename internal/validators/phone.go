package validators

import "fmt"

// FormatPhone aplica a máscara de exibição brasileira:
// (11) 9999-9999 para 10 dígitos, (11) 99999-9999 para 11.
// Entradas fora desses tamanhos voltam como chegaram.
func FormatPhone(phone string) string {
	digits := OnlyDigits(phone)

	switch len(digits) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	default:
		return phone
	}
}
