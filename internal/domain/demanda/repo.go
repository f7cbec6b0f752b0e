package demanda

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Pagina devolve uma página da demanda do depósito, ordenada por numero_nt
// para que o ranking herde uma ordem determinística. O motor de corte
// drena as páginas até esvaziar.
func (r *Repo) Pagina(ctx context.Context, deposito string, offset, limite int) ([]Linha, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT material,
		       COALESCE(quant_nt, 0),
		       COALESCE(numero_nt, 0),
		       COALESCE(usuario, ''),
		       COALESCE(nome_usuario, ''),
		       COALESCE(item_finalizado, ''),
		       COALESCE(dt_producao, ''),
		       COALESCE(desc_material, '')
		FROM cortex_demanda
		WHERE deposito = $1 AND material IS NOT NULL
		ORDER BY numero_nt, id
		LIMIT $2 OFFSET $3
	`, deposito, limite, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Linha
	for rows.Next() {
		var l Linha
		if err := rows.Scan(
			&l.Material,
			&l.Quantidade,
			&l.NumeroNT,
			&l.Usuario,
			&l.NomeUsuario,
			&l.ItemFinalizado,
			&l.DtProducao,
			&l.Descricao,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
