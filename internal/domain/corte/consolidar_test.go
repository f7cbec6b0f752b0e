package corte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/Cortex/internal/domain/estoque"
)

func TestConsolidarEstoque_SomaPorMaterial(t *testing.T) {
	linhas := []estoque.Linha{
		{Material: 10, Disponivel: 5, Descricao: "ARROZ 5KG"},
		{Material: 10, Disponivel: 3},
		{Material: 20, Disponivel: 0, Descricao: "FEIJAO 1KG"},
	}

	c := ConsolidarEstoque(linhas)
	require.Len(t, c, 2)

	assert.Equal(t, 8.0, c[10].EstoqueTotal)
	assert.Equal(t, "ARROZ 5KG", c[10].Descricao)

	// material com estoque zero continua cadastrado
	require.Contains(t, c, int64(20))
	assert.Equal(t, 0.0, c[20].EstoqueTotal)
}

func TestConsolidarEstoque_DescartaLinhaSemMaterial(t *testing.T) {
	c := ConsolidarEstoque([]estoque.Linha{
		{Material: 0, Disponivel: 99},
		{Material: 7, Disponivel: 1},
	})
	require.Len(t, c, 1)
	assert.Contains(t, c, int64(7))
}

func TestConsolidarEstoque_DescricaoPrimeiraNaoVazia(t *testing.T) {
	c := ConsolidarEstoque([]estoque.Linha{
		{Material: 30, Disponivel: 1, Descricao: ""},
		{Material: 30, Disponivel: 2, Descricao: "OLEO DE SOJA"},
		{Material: 30, Disponivel: 3, Descricao: "OUTRA DESCRICAO"},
	})
	assert.Equal(t, "OLEO DE SOJA", c[30].Descricao)
	assert.Equal(t, 6.0, c[30].EstoqueTotal)
}

func TestConsolidarEstoque_Vazio(t *testing.T) {
	assert.Empty(t, ConsolidarEstoque(nil))
}
