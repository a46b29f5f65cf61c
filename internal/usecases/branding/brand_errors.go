package branding

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de marcas
var (
	ErrInvalidBrandRecord = errors.New("registro de marca inválido")
	ErrBrandNotFound      = errors.New("marca não encontrada")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID         = errors.New("erro ao gerar id da marca")
)

// FieldError descreve a falha de validação de um campo do corpo recebido.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BrandError é um erro com contexto adicional para marcas
type BrandError struct {
	Err     error        // Erro base
	Code    string       // Código de erro para API
	BrandID string       // ID da marca envolvida (quando aplicável)
	Details string       // Detalhes adicionais
	Fields  []FieldError // Campos inválidos (apenas validação)
}

// Error implementa a interface error
func (e *BrandError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BrandError) Unwrap() error {
	return e.Err
}

// NewBrandError cria um novo BrandError
func NewBrandError(err error, code string, details string) *BrandError {
	return &BrandError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBrandErrorWithID cria um novo BrandError com o ID da marca
func NewBrandErrorWithID(err error, code string, brandID string, details string) *BrandError {
	return &BrandError{
		Err:     err,
		Code:    code,
		BrandID: brandID,
		Details: details,
	}
}
