package estoque

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Listar devolve todas as linhas de estoque do depósito.
// Linhas sem material são descartadas já na consulta; estoque nulo vira 0
// (material com estoque zero continua sendo material conhecido).
func (r *Repo) Listar(ctx context.Context, deposito string) ([]Linha, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT material, COALESCE(estoque_disponivel, 0), COALESCE(texto_breve_material, '')
		FROM cortex_estoque
		WHERE dep = $1 AND material IS NOT NULL
	`, deposito)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Linha
	for rows.Next() {
		var l Linha
		if err := rows.Scan(&l.Material, &l.Disponivel, &l.Descricao); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
