package demanda

// Linha é uma linha de demanda (uma por NT/material/item), imutável
// depois de lida.
//
// Usuario e NomeUsuario vêm de colunas distintas da fonte; a atribuição
// de separador prefere NomeUsuario e cai para Usuario.
type Linha struct {
	Material       int64
	Quantidade     float64
	NumeroNT       int64
	Usuario        string
	NomeUsuario    string
	ItemFinalizado string
	DtProducao     string
	Descricao      string
}
