package projecting

import "errors"

var (
	ErrInvalidCommissionRate = errors.New("taxa de comissão inválida")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID            = errors.New("erro ao gerar id do snapshot")
)
