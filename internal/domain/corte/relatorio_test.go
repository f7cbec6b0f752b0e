package corte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepositoParaSetor(t *testing.T) {
	assert.Equal(t, "DP01", DepositoParaSetor("Mercearia"))
	assert.Equal(t, "DP40", DepositoParaSetor("Perecíveis"))
	assert.Equal(t, "DP40", DepositoParaSetor("qualquer outro"))
}

func TestMontarResumo_MetaPorSetor(t *testing.T) {
	// mesmo percentual (2.5%), metas diferentes
	ag := novoAgregador()
	ag.volumeOK = 200
	ag.volumeCortado = 5
	ag.volumeTotal = 200

	resumo := montarResumo("Mercearia", ag)
	assert.Equal(t, 2.5, resumo.PercentualCorte)
	assert.Equal(t, 3.0, resumo.MetaPercentual)
	assert.Equal(t, StatusMetaOK, resumo.StatusMeta)

	resumo = montarResumo("Perecíveis", ag)
	assert.Equal(t, 2.0, resumo.MetaPercentual)
	assert.Equal(t, StatusMetaAcima, resumo.StatusMeta)
}

func TestMontarResumo_SemVolumeOKNaoDividePorZero(t *testing.T) {
	ag := novoAgregador()
	ag.volumeTotal = 10 // tudo fora do cadastro

	resumo := montarResumo("Mercearia", ag)
	assert.Equal(t, 0.0, resumo.PercentualCorte)
	assert.Equal(t, StatusMetaOK, resumo.StatusMeta)
}

func TestMontarResumo_ArredondaDuasCasas(t *testing.T) {
	ag := novoAgregador()
	ag.volumeOK = 3
	ag.volumeCortado = 1

	resumo := montarResumo("Mercearia", ag)
	assert.Equal(t, 33.33, resumo.PercentualCorte)
}

func TestOrdenarMateriais_EmpateMantemOrdemDeChegada(t *testing.T) {
	ms := []CorteMaterial{
		{Material: 1, TotalCortado: 5},
		{Material: 2, TotalCortado: 10},
		{Material: 3, TotalCortado: 5},
	}
	ordenarMateriais(ms)

	assert.Equal(t, int64(2), ms[0].Material)
	assert.Equal(t, int64(1), ms[1].Material)
	assert.Equal(t, int64(3), ms[2].Material)
}

func TestOrdenarSeparadores_DescPorPercentual(t *testing.T) {
	ss := []SeparadorCorte{
		{Usuario: "A", PercentualCorte: 10},
		{Usuario: "B", PercentualCorte: 50},
		{Usuario: "C", PercentualCorte: 10},
	}
	ordenarSeparadores(ss)

	assert.Equal(t, "B", ss[0].Usuario)
	assert.Equal(t, "A", ss[1].Usuario)
	assert.Equal(t, "C", ss[2].Usuario)
}

func TestTopMateriais(t *testing.T) {
	res := &Resultado{}
	for i := 0; i < 25; i++ {
		res.Materiais = append(res.Materiais, CorteMaterial{Material: int64(i)})
	}
	assert.Len(t, res.TopMateriais(20), 20)

	res.Materiais = res.Materiais[:5]
	assert.Len(t, res.TopMateriais(20), 5)
}
