package corte

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// InserirCorte grava o registro pai. Reprocessar o mesmo (setor, data)
// substitui o corte do dia em vez de duplicar: upsert na chave única e
// limpeza das linhas filhas do registro substituído, tudo na mesma
// transação.
func (r *Repo) InserirCorte(ctx context.Context, c *Corte) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO cortex_cortes
			(setor, data, deposito_codigo, volume_total, volume_ok,
			 volume_atendido, volume_cortado, percentual_corte,
			 total_materiais_cortados, total_separadores, data_processamento)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (setor, data) DO UPDATE SET
			deposito_codigo          = EXCLUDED.deposito_codigo,
			volume_total             = EXCLUDED.volume_total,
			volume_ok                = EXCLUDED.volume_ok,
			volume_atendido          = EXCLUDED.volume_atendido,
			volume_cortado           = EXCLUDED.volume_cortado,
			percentual_corte         = EXCLUDED.percentual_corte,
			total_materiais_cortados = EXCLUDED.total_materiais_cortados,
			total_separadores        = EXCLUDED.total_separadores,
			data_processamento       = EXCLUDED.data_processamento
		RETURNING id
	`,
		c.Setor, c.Data, c.DepositoCodigo, c.VolumeTotal, c.VolumeOK,
		c.VolumeAtendido, c.VolumeCortado, c.PercentualCorte,
		c.TotalMateriaisCortados, c.TotalSeparadores, c.DataProcessamento,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	// filhos do corte substituído saem junto
	if _, err = tx.Exec(ctx, `DELETE FROM cortex_materiais_cortados WHERE corte_id = $1`, id); err != nil {
		return 0, err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM cortex_separadores_corte WHERE corte_id = $1`, id); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) InserirMateriais(ctx context.Context, corteID int64, ms []CorteMaterial) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, m := range ms {
		if _, err = tx.Exec(ctx, `
			INSERT INTO cortex_materiais_cortados
				(corte_id, material, descricao, total_cortado, linhas_cortadas, usuarios_cortaram)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, corteID, m.Material, m.Descricao, m.TotalCortado, m.LinhasCortadas,
			strings.Join(m.UsuariosCortaram, ", ")); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *Repo) InserirSeparadores(ctx context.Context, corteID int64, ss []SeparadorCorte) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, s := range ss {
		if _, err = tx.Exec(ctx, `
			INSERT INTO cortex_separadores_corte
				(corte_id, usuario, nome_usuario, total_atendido, total_cortado, percentual_corte)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, corteID, s.Usuario, s.NomeUsuario, s.TotalAtendido, s.TotalCortado,
			Arredonda2(s.PercentualCorte)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// GetCorte lê um relatório persistido: pai + filhos já ordenados
// (materiais por total cortado desc, separadores por percentual desc).
// (nil, nil, nil, nil) quando o id não existe.
func (r *Repo) GetCorte(ctx context.Context, id int64) (*Corte, []MaterialSalvo, []SeparadorSalvo, error) {
	var c Corte
	var data time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT id, setor, data, deposito_codigo, volume_total, volume_ok,
		       volume_atendido, volume_cortado, percentual_corte,
		       total_materiais_cortados, total_separadores, data_processamento
		FROM cortex_cortes
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Setor, &data, &c.DepositoCodigo, &c.VolumeTotal, &c.VolumeOK,
		&c.VolumeAtendido, &c.VolumeCortado, &c.PercentualCorte,
		&c.TotalMateriaisCortados, &c.TotalSeparadores, &c.DataProcessamento,
	)
	if err == pgx.ErrNoRows {
		return nil, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}
	c.Data = data.Format("2006-01-02")

	materiais, err := r.materiaisDoCorte(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	separadores, err := r.separadoresDoCorte(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return &c, materiais, separadores, nil
}

func (r *Repo) materiaisDoCorte(ctx context.Context, corteID int64) ([]MaterialSalvo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, corte_id, material, descricao, total_cortado, linhas_cortadas, usuarios_cortaram
		FROM cortex_materiais_cortados
		WHERE corte_id = $1
		ORDER BY total_cortado DESC, id
	`, corteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MaterialSalvo{}
	for rows.Next() {
		var m MaterialSalvo
		if err := rows.Scan(&m.ID, &m.CorteID, &m.Material, &m.Descricao,
			&m.TotalCortado, &m.LinhasCortadas, &m.UsuariosCortaram); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) separadoresDoCorte(ctx context.Context, corteID int64) ([]SeparadorSalvo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, corte_id, usuario, nome_usuario, total_atendido, total_cortado, percentual_corte
		FROM cortex_separadores_corte
		WHERE corte_id = $1
		ORDER BY percentual_corte DESC, id
	`, corteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SeparadorSalvo{}
	for rows.Next() {
		var s SeparadorSalvo
		if err := rows.Scan(&s.ID, &s.CorteID, &s.Usuario, &s.NomeUsuario,
			&s.TotalAtendido, &s.TotalCortado, &s.PercentualCorte); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FiltroHistorico filtra a listagem de cortes. Setor vazio ou "todos"
// não filtra; as datas são inclusivas.
type FiltroHistorico struct {
	Setor       string
	DataInicial string
	DataFinal   string
	Pagina      int
	Limite      int
}

// Listar devolve a página pedida do histórico (data desc, setor asc) e o
// total de registros que casam com o filtro.
func (r *Repo) Listar(ctx context.Context, f FiltroHistorico) ([]Corte, int, error) {
	if f.Pagina <= 0 {
		f.Pagina = 1
	}
	if f.Limite <= 0 {
		f.Limite = 20
	}

	where := []string{"TRUE"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Setor != "" && f.Setor != "todos" {
		where = append(where, "setor = "+arg(f.Setor))
	}
	if f.DataInicial != "" {
		where = append(where, "data >= "+arg(f.DataInicial))
	}
	if f.DataFinal != "" {
		where = append(where, "data <= "+arg(f.DataFinal))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cortex_cortes WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
		SELECT id, setor, data, deposito_codigo, volume_total, volume_ok,
		       volume_atendido, volume_cortado, percentual_corte,
		       total_materiais_cortados, total_separadores, data_processamento
		FROM cortex_cortes
		WHERE ` + cond + `
		ORDER BY data DESC, setor ASC
		LIMIT ` + arg(f.Limite) + ` OFFSET ` + arg((f.Pagina-1)*f.Limite)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Corte{}
	for rows.Next() {
		var c Corte
		var data time.Time
		if err := rows.Scan(
			&c.ID, &c.Setor, &data, &c.DepositoCodigo, &c.VolumeTotal, &c.VolumeOK,
			&c.VolumeAtendido, &c.VolumeCortado, &c.PercentualCorte,
			&c.TotalMateriaisCortados, &c.TotalSeparadores, &c.DataProcessamento,
		); err != nil {
			return nil, 0, err
		}
		c.Data = data.Format("2006-01-02")
		out = append(out, c)
	}
	return out, total, rows.Err()
}
