package corte

import "sort"

// Ranking: materiais por total cortado desc, separadores por percentual
// desc. Ordenação estável para que empates preservem a ordem de chegada
// da demanda.
func ordenarMateriais(ms []CorteMaterial) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].TotalCortado > ms[j].TotalCortado
	})
}

func ordenarSeparadores(ss []SeparadorCorte) {
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].PercentualCorte > ss[j].PercentualCorte
	})
}

func montarResumo(setor string, ag *agregador) Resumo {
	percentual := 0.0
	if ag.volumeOK > 0 {
		percentual = float64(ag.volumeCortado) / float64(ag.volumeOK) * 100
	}

	meta := MetaParaSetor(setor)
	status := StatusMetaOK
	if percentual > meta {
		status = StatusMetaAcima
	}

	return Resumo{
		VolumeTotal:     ag.volumeTotal,
		VolumeOK:        ag.volumeOK,
		VolumeAtendido:  ag.volumeAtendido,
		VolumeCortado:   ag.volumeCortado,
		PercentualCorte: Arredonda2(percentual),
		MetaPercentual:  meta,
		StatusMeta:      status,
	}
}
