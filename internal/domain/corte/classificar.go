package corte

import "github.com/esc4n0rx/Cortex/internal/domain/demanda"

// MarcadorFinalizado é o literal que a fonte usa em item_finalizado.
const MarcadorFinalizado = "X"

// A data de produção 01/01/1900 é o sentinela de "nunca produzido": a
// linha saiu do pedido porque o estoque acabou. A fonte grava o valor em
// três representações diferentes; a comparação é textual, sem parse.
var datasSentinelaCorte = []string{
	"1900-01-01",
	"01/01/1900",
	"1900-01-01T00:00:00.000Z",
}

func dataDeCorte(dtProducao string) bool {
	for _, s := range datasSentinelaCorte {
		if dtProducao == s {
			return true
		}
	}
	return false
}

// Classificar aplica a máquina de estados por linha. Precedência:
//  1. material fora do cadastro de estoque → StatusForaCadastro;
//  2. finalizado sem sentinela de corte → StatusAtendida;
//  3. sentinela de corte → StatusCortada, mesmo com item_finalizado="X"
//     (alguns registros são finalizados administrativamente antes do
//     corte ser refletido — o sentinela manda);
//  4. resto → StatusNeutra.
func Classificar(l demanda.Linha, cadastro map[int64]*EstoqueConsolidado) Status {
	if _, ok := cadastro[l.Material]; !ok {
		return StatusForaCadastro
	}

	finalizado := l.ItemFinalizado == MarcadorFinalizado
	cortado := dataDeCorte(l.DtProducao)

	switch {
	case finalizado && !cortado:
		return StatusAtendida
	case cortado:
		return StatusCortada
	default:
		return StatusNeutra
	}
}
