package corte

import (
	"math"
	"time"
)

// Setores conhecidos e seus depósitos/metas. Qualquer setor fora da
// Mercearia cai no DP40 com meta de 2%.
const (
	SetorMercearia = "Mercearia"

	DepositoMercearia = "DP01"
	DepositoPadrao    = "DP40"

	MetaMercearia = 3.0
	MetaPadrao    = 2.0

	StatusMetaOK    = "OK"
	StatusMetaAcima = "ACIMA"
)

func DepositoParaSetor(setor string) string {
	if setor == SetorMercearia {
		return DepositoMercearia
	}
	return DepositoPadrao
}

func MetaParaSetor(setor string) float64 {
	if setor == SetorMercearia {
		return MetaMercearia
	}
	return MetaPadrao
}

// Status é o resultado terminal da classificação de uma linha de demanda.
type Status int

const (
	// StatusForaCadastro: material não existe no estoque do depósito,
	// nem com quantidade zero. Só conta no volume total.
	StatusForaCadastro Status = iota
	StatusAtendida
	StatusCortada
	// StatusNeutra: linha no cadastro, nem atendida nem cortada.
	StatusNeutra
)

// EstoqueConsolidado é a soma do estoque disponível de um material no
// depósito, incluindo linhas com quantidade zero.
type EstoqueConsolidado struct {
	Material     int64
	EstoqueTotal float64
	Descricao    string
}

type CorteMaterial struct {
	Material         int64    `json:"material"`
	Descricao        string   `json:"descricao"`
	TotalCortado     float64  `json:"total_cortado"`
	LinhasCortadas   int      `json:"linhas_cortadas"`
	UsuariosCortaram []string `json:"usuarios_cortaram"`
}

type SeparadorCorte struct {
	Usuario         string  `json:"usuario"`
	NomeUsuario     string  `json:"nome_usuario"`
	TotalAtendido   float64 `json:"total_atendido"`
	TotalCortado    float64 `json:"total_cortado"`
	PercentualCorte float64 `json:"percentual_corte"`
}

type Resumo struct {
	VolumeTotal     int     `json:"volume_total"`
	VolumeOK        int     `json:"volume_ok"`
	VolumeAtendido  int     `json:"volume_atendido"`
	VolumeCortado   int     `json:"volume_cortado"`
	PercentualCorte float64 `json:"percentual_corte"`
	MetaPercentual  float64 `json:"meta_percentual"`
	StatusMeta      string  `json:"status_meta"`
}

type Debug struct {
	TotalDemandaProcessada int `json:"total_demanda_processada"`
	TotalMateriaisEstoque  int `json:"total_materiais_estoque"`
	CacheUsuariosNT        int `json:"cache_usuarios_nt"`
}

// Corte é o registro pai persistido (uma execução do motor).
type Corte struct {
	ID                     int64     `json:"id"`
	Setor                  string    `json:"setor"`
	Data                   string    `json:"data"`
	DepositoCodigo         string    `json:"deposito_codigo"`
	VolumeTotal            int       `json:"volume_total"`
	VolumeOK               int       `json:"volume_ok"`
	VolumeAtendido         int       `json:"volume_atendido"`
	VolumeCortado          int       `json:"volume_cortado"`
	PercentualCorte        float64   `json:"percentual_corte"`
	TotalMateriaisCortados int       `json:"total_materiais_cortados"`
	TotalSeparadores       int       `json:"total_separadores"`
	DataProcessamento      time.Time `json:"data_processamento"`
}

// MaterialSalvo e SeparadorSalvo são as linhas filhas como saem do banco
// (endpoints de leitura).
type MaterialSalvo struct {
	ID               int64   `json:"id"`
	CorteID          int64   `json:"corte_id"`
	Material         int64   `json:"material"`
	Descricao        string  `json:"descricao"`
	TotalCortado     float64 `json:"total_cortado"`
	LinhasCortadas   int     `json:"linhas_cortadas"`
	UsuariosCortaram string  `json:"usuarios_cortaram"`
}

type SeparadorSalvo struct {
	ID              int64   `json:"id"`
	CorteID         int64   `json:"corte_id"`
	Usuario         string  `json:"usuario"`
	NomeUsuario     string  `json:"nome_usuario"`
	TotalAtendido   float64 `json:"total_atendido"`
	TotalCortado    float64 `json:"total_cortado"`
	PercentualCorte float64 `json:"percentual_corte"`
}

// Resultado é o produto de uma execução completa do motor. Imutável
// depois de montado; CorteID fica nulo quando a gravação do pai falhou.
type Resultado struct {
	Setor          string
	Data           string
	DepositoCodigo string
	Resumo         Resumo
	Materiais      []CorteMaterial
	Separadores    []SeparadorCorte
	CorteID        *int64
	Debug          Debug
	GeradoEm       time.Time
}

// TopMateriais devolve os n primeiros materiais do ranking (resposta da
// API); o conjunto completo continua em Materiais e é o que se persiste.
func (r *Resultado) TopMateriais(n int) []CorteMaterial {
	if len(r.Materiais) <= n {
		return r.Materiais
	}
	return r.Materiais[:n]
}

func Arredonda2(v float64) float64 {
	return math.Round(v*100) / 100
}
