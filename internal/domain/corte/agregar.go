package corte

import "github.com/esc4n0rx/Cortex/internal/domain/demanda"

// agregador acumula os resumos por material e por separador. Os mapas
// dão o acesso O(1); as fatias de ordem guardam a primeira aparição para
// que empates no ranking fiquem determinísticos.
type agregador struct {
	materiais      map[int64]*CorteMaterial
	ordemMateriais []int64

	separadores      map[string]*SeparadorCorte
	ordemSeparadores []string

	volumeTotal    int
	volumeOK       int
	volumeAtendido int
	volumeCortado  int
}

func novoAgregador() *agregador {
	return &agregador{
		materiais:   make(map[int64]*CorteMaterial),
		separadores: make(map[string]*SeparadorCorte),
	}
}

func (a *agregador) separador(usuario string) *SeparadorCorte {
	s, ok := a.separadores[usuario]
	if !ok {
		s = &SeparadorCorte{Usuario: usuario, NomeUsuario: usuario}
		a.separadores[usuario] = s
		a.ordemSeparadores = append(a.ordemSeparadores, usuario)
	}
	return s
}

// registrar processa uma linha já classificada. Quantidade nula já chega
// como 0 do feed — a linha nunca é pulada, só não soma nada.
func (a *agregador) registrar(l demanda.Linha, st Status, usuario string, cadastro map[int64]*EstoqueConsolidado) {
	a.volumeTotal++
	if st == StatusForaCadastro {
		return
	}
	a.volumeOK++

	switch st {
	case StatusAtendida:
		a.volumeAtendido++
		if usuario != "" {
			a.separador(usuario).TotalAtendido += l.Quantidade
		}

	case StatusCortada:
		a.volumeCortado++

		m, ok := a.materiais[l.Material]
		if !ok {
			descricao := l.Descricao
			if descricao == "" {
				if e := cadastro[l.Material]; e != nil {
					descricao = e.Descricao
				}
			}
			m = &CorteMaterial{Material: l.Material, Descricao: descricao}
			a.materiais[l.Material] = m
			a.ordemMateriais = append(a.ordemMateriais, l.Material)
		}
		m.TotalCortado += l.Quantidade
		m.LinhasCortadas++
		if usuario != "" && !contem(m.UsuariosCortaram, usuario) {
			m.UsuariosCortaram = append(m.UsuariosCortaram, usuario)
		}

		if usuario != "" {
			a.separador(usuario).TotalCortado += l.Quantidade
		}
	}
}

// fechar materializa os agregados na ordem de primeira aparição, calcula
// o percentual de cada separador e descarta separadores sem atividade.
func (a *agregador) fechar() ([]CorteMaterial, []SeparadorCorte) {
	materiais := make([]CorteMaterial, 0, len(a.ordemMateriais))
	for _, mat := range a.ordemMateriais {
		materiais = append(materiais, *a.materiais[mat])
	}

	separadores := make([]SeparadorCorte, 0, len(a.ordemSeparadores))
	for _, usuario := range a.ordemSeparadores {
		s := a.separadores[usuario]
		total := s.TotalAtendido + s.TotalCortado
		if total <= 0 {
			continue
		}
		s.PercentualCorte = s.TotalCortado / total * 100
		separadores = append(separadores, *s)
	}
	return materiais, separadores
}

func contem(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
