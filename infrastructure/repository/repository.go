// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound indica que a escrita não encontrou o registro alvo.
var ErrNotFound = errors.New("registro não encontrado")

// now retorna o instante atual em UTC, truncado para a precisão do postgres.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
