package estoque

// Linha é uma linha bruta do extrato de estoque (uma por lote/posição).
// Vários registros por material são esperados; a consolidação acontece
// no motor de corte.
type Linha struct {
	Material   int64
	Disponivel float64
	Descricao  string
}
