package corte

import "github.com/esc4n0rx/Cortex/internal/domain/demanda"

// NovoCacheNT varre a demanda completa uma vez e guarda, por NT, o
// primeiro usuário não vazio encontrado. Linhas sem usuário herdam o
// responsável da própria NT.
func NovoCacheNT(linhas []demanda.Linha) map[int64]string {
	cache := make(map[int64]string)
	for _, l := range linhas {
		if l.NumeroNT == 0 {
			continue
		}
		usuario := l.NomeUsuario
		if usuario == "" {
			usuario = l.Usuario
		}
		if usuario == "" {
			continue
		}
		if _, ok := cache[l.NumeroNT]; !ok {
			cache[l.NumeroNT] = usuario
		}
	}
	return cache
}

// UsuarioResponsavel resolve o separador de uma linha: nome_usuario,
// depois usuario, depois o cache da NT. Vazio é válido — a linha conta
// nos agregados por material mas não entra em nenhum separador.
func UsuarioResponsavel(l demanda.Linha, cache map[int64]string) string {
	usuario := l.NomeUsuario
	if usuario == "" {
		usuario = l.Usuario
	}
	if usuario == "" && l.NumeroNT != 0 {
		usuario = cache[l.NumeroNT]
	}
	return usuario
}
