package corte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/Cortex/internal/domain/demanda"
)

func TestAgregador_Volumes(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10}}

	ag.registrar(demanda.Linha{Material: 99}, StatusForaCadastro, "", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 5}, StatusAtendida, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 3}, StatusCortada, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10}, StatusNeutra, "ALICE", cadastro)

	assert.Equal(t, 4, ag.volumeTotal)
	assert.Equal(t, 3, ag.volumeOK)
	assert.Equal(t, 1, ag.volumeAtendido)
	assert.Equal(t, 1, ag.volumeCortado)
}

func TestAgregador_MaterialAcumulaEDeduplicaUsuarios(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10, Descricao: "DO ESTOQUE"}}

	ag.registrar(demanda.Linha{Material: 10, Quantidade: 3}, StatusCortada, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 2}, StatusCortada, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 1}, StatusCortada, "BOB", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 4}, StatusCortada, "", cadastro)

	materiais, _ := ag.fechar()
	require.Len(t, materiais, 1)

	m := materiais[0]
	assert.Equal(t, 10.0, m.TotalCortado)
	assert.Equal(t, 4, m.LinhasCortadas)
	assert.Equal(t, []string{"ALICE", "BOB"}, m.UsuariosCortaram)
	assert.Equal(t, "DO ESTOQUE", m.Descricao, "descrição cai para o estoque quando a linha não traz")
}

func TestAgregador_DescricaoDaLinhaTemPrioridade(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10, Descricao: "DO ESTOQUE"}}

	ag.registrar(demanda.Linha{Material: 10, Quantidade: 1, Descricao: "DA DEMANDA"}, StatusCortada, "", cadastro)

	materiais, _ := ag.fechar()
	require.Len(t, materiais, 1)
	assert.Equal(t, "DA DEMANDA", materiais[0].Descricao)
}

func TestAgregador_PercentualDoSeparador(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10}}

	ag.registrar(demanda.Linha{Material: 10, Quantidade: 6}, StatusAtendida, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 2}, StatusCortada, "ALICE", cadastro)

	_, separadores := ag.fechar()
	require.Len(t, separadores, 1)
	assert.InDelta(t, 25.0, separadores[0].PercentualCorte, 1e-9)
}

func TestAgregador_SeparadorSemAtividadeSai(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10}}

	// quantidade zero nunca pula a linha, só não soma — e sem soma o
	// separador não aparece na lista final
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 0}, StatusAtendida, "ALICE", cadastro)
	ag.registrar(demanda.Linha{Material: 10, Quantidade: 0}, StatusCortada, "ALICE", cadastro)

	materiais, separadores := ag.fechar()
	assert.Empty(t, separadores)

	// o material cortado continua registrado mesmo com quantidade zero
	require.Len(t, materiais, 1)
	assert.Equal(t, 1, materiais[0].LinhasCortadas)
	assert.Equal(t, 0.0, materiais[0].TotalCortado)
}

func TestAgregador_LinhaSemUsuarioSoContaNoMaterial(t *testing.T) {
	ag := novoAgregador()
	cadastro := map[int64]*EstoqueConsolidado{10: {Material: 10}}

	ag.registrar(demanda.Linha{Material: 10, Quantidade: 5}, StatusCortada, "", cadastro)

	materiais, separadores := ag.fechar()
	require.Len(t, materiais, 1)
	assert.Empty(t, materiais[0].UsuariosCortaram)
	assert.Empty(t, separadores)
}
