package ingesting

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrMissingRequiredField = errors.New("campo obrigatório ausente")
	ErrInvalidField         = errors.New("campo com formato inválido")

	// Erros de banco de dados
	ErrResolveAccount = errors.New("erro ao resolver a conta")
	ErrUpsertMetric   = errors.New("erro ao gravar a métrica da campanha")
	ErrGenerateID     = errors.New("erro ao gerar identificador da conta")
)

// IngestionError carrega o código de API e o campo que causou a falha
type IngestionError struct {
	Err     error
	Code    string
	Field   string
	Details string
}

func (e *IngestionError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	return msg
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

func NewIngestionError(err error, code string, details string) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewFieldError(err error, code string, field string, details string) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
