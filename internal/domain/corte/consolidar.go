package corte

import "github.com/esc4n0rx/Cortex/internal/domain/estoque"

// ConsolidarEstoque reduz as linhas brutas (uma por lote/posição) a um
// registro por material, somando as quantidades. Linhas com quantidade
// zero entram na soma: material com estoque zero continua cadastrado, o
// que muda a classificação da demanda dele (corte, e não fora de
// cadastro). Linhas sem material são descartadas.
func ConsolidarEstoque(linhas []estoque.Linha) map[int64]*EstoqueConsolidado {
	consolidado := make(map[int64]*EstoqueConsolidado)
	for _, l := range linhas {
		if l.Material == 0 {
			continue
		}
		e, ok := consolidado[l.Material]
		if !ok {
			e = &EstoqueConsolidado{Material: l.Material}
			consolidado[l.Material] = e
		}
		e.EstoqueTotal += l.Disponivel
		// descrição: primeira não vazia vista para o material
		if e.Descricao == "" && l.Descricao != "" {
			e.Descricao = l.Descricao
		}
	}
	return consolidado
}
