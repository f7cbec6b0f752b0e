package corte

import (
	"errors"
	"fmt"
)

// Pré-condições detectadas antes de qualquer processamento pesado;
// viram 400 na borda HTTP.
var (
	ErrSemEstoque = errors.New("não há dados de estoque disponíveis para este setor")
	ErrSemDemanda = errors.New("não há dados de demanda disponíveis para este setor")
)

// ErroFeed embrulha uma falha de leitura de um dos feeds externos.
type ErroFeed struct {
	Feed string
	Err  error
}

func (e *ErroFeed) Error() string {
	return fmt.Sprintf("erro ao buscar %s: %v", e.Feed, e.Err)
}

func (e *ErroFeed) Unwrap() error { return e.Err }
