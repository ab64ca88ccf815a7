package booking

import (
	"errors"
	"fmt"
)

// ===============================
// Erros de validação / persistência
// ===============================

// MissingFieldError identifica o primeiro campo obrigatório ausente.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing_field: %s", e.Field)
}

// InvalidCPFError identifica qual verificação do CPF falhou.
type InvalidCPFError struct {
	Reason string
}

func (e InvalidCPFError) Error() string {
	return fmt.Sprintf("invalid_cpf: %s", e.Reason)
}

// PersistenceError envolve uma falha do colaborador de persistência.
// Nunca há retry automático: o erro sobe intacto até a borda HTTP.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence_error: %v", e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

var (
	// ErrSlotTaken: já existe agendamento pending/confirmed no mesmo
	// (barbeiro, data, horário).
	ErrSlotTaken = errors.New("slot_taken")

	// ErrNotFound: slug/entidade não resolvida no tenant.
	ErrNotFound = errors.New("not_found")
)

func IsMissingField(err error) (string, bool) {
	var mf MissingFieldError
	if errors.As(err, &mf) {
		return mf.Field, true
	}
	return "", false
}

func IsInvalidCPF(err error) bool {
	var ic InvalidCPFError
	return errors.As(err, &ic)
}
