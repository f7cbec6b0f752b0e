package corte

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esc4n0rx/Cortex/internal/domain/demanda"
)

func TestCacheNT_PrimeiroUsuarioVence(t *testing.T) {
	linhas := []demanda.Linha{
		{NumeroNT: 555, NomeUsuario: "ALICE"},
		{NumeroNT: 555, NomeUsuario: "BOB"},
		{NumeroNT: 700, Usuario: "CAROL"},
		{NumeroNT: 800},
	}

	cache := NovoCacheNT(linhas)
	assert.Equal(t, "ALICE", cache[555])
	assert.Equal(t, "CAROL", cache[700], "usuario serve de fallback do nome_usuario")
	assert.NotContains(t, cache, int64(800))
}

func TestCacheNT_IgnoraNTZero(t *testing.T) {
	cache := NovoCacheNT([]demanda.Linha{{NumeroNT: 0, NomeUsuario: "ALICE"}})
	assert.Empty(t, cache)
}

func TestUsuarioResponsavel(t *testing.T) {
	cache := map[int64]string{555: "ALICE"}

	tests := []struct {
		nome  string
		linha demanda.Linha
		quer  string
	}{
		{"nome_usuario da própria linha", demanda.Linha{NomeUsuario: "BOB", NumeroNT: 555}, "BOB"},
		{"usuario quando falta nome_usuario", demanda.Linha{Usuario: "CAROL", NumeroNT: 555}, "CAROL"},
		{"cache da NT quando a linha não tem usuário", demanda.Linha{NumeroNT: 555}, "ALICE"},
		{"vazio quando nada resolve", demanda.Linha{NumeroNT: 999}, ""},
		{"vazio sem NT", demanda.Linha{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.quer, UsuarioResponsavel(tc.linha, cache))
		})
	}
}
