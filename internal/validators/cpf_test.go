package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF_Valid(t *testing.T) {
	assert.NoError(t, ValidateCPF("52998224725"))
	assert.NoError(t, ValidateCPF("529.982.247-25"))
}

func TestValidateCPF_WrongLength(t *testing.T) {
	assert.ErrorIs(t, ValidateCPF(""), ErrCPFLength)
	assert.ErrorIs(t, ValidateCPF("5299822472"), ErrCPFLength)
	assert.ErrorIs(t, ValidateCPF("529982247255"), ErrCPFLength)
	assert.ErrorIs(t, ValidateCPF("abc"), ErrCPFLength)
}

func TestValidateCPF_RepeatedDigits(t *testing.T) {
	assert.ErrorIs(t, ValidateCPF("00000000000"), ErrCPFRepeatedDigits)
	assert.ErrorIs(t, ValidateCPF("111.111.111-11"), ErrCPFRepeatedDigits)
	assert.ErrorIs(t, ValidateCPF("99999999999"), ErrCPFRepeatedDigits)
}

func TestValidateCPF_WrongCheckDigits(t *testing.T) {
	// primeiro verificador alterado (2 → 3)
	assert.ErrorIs(t, ValidateCPF("52998224735"), ErrCPFCheckDigit1)
	// segundo verificador alterado (5 → 6)
	assert.ErrorIs(t, ValidateCPF("52998224726"), ErrCPFCheckDigit2)
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "52998224725", OnlyDigits("529.982.247-25"))
	assert.Equal(t, "11987654321", OnlyDigits("(11) 98765-4321"))
	assert.Equal(t, "", OnlyDigits("abc-"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatCPF("529.982.247-25"))

	// tamanhos inválidos voltam intactos
	assert.Equal(t, "123", FormatCPF("123"))
}

func TestCPFCheckDigit_ReferenceNumber(t *testing.T) {
	digits := "52998224725"
	require.Equal(t, 2, cpfCheckDigit(digits, 9))
	require.Equal(t, 5, cpfCheckDigit(digits, 10))
}
