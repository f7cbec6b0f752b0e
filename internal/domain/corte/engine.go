package corte

import (
	"context"
	"log/slog"
	"time"

	"github.com/esc4n0rx/Cortex/internal/domain/demanda"
	"github.com/esc4n0rx/Cortex/internal/domain/estoque"
)

// Feeds externos. O contrato dos dois é de exaustão: o motor precisa da
// demanda inteira em memória antes de classificar (o cache de NT é um
// pré-passe sobre o conjunto completo).
type FeedEstoque interface {
	Listar(ctx context.Context, deposito string) ([]estoque.Linha, error)
}

type FeedDemanda interface {
	Pagina(ctx context.Context, deposito string, offset, limite int) ([]demanda.Linha, error)
}

// Sink é o destino append-only do relatório. A política de unicidade por
// (setor, data) vive na implementação, não aqui.
type Sink interface {
	InserirCorte(ctx context.Context, c *Corte) (int64, error)
	InserirMateriais(ctx context.Context, corteID int64, ms []CorteMaterial) error
	InserirSeparadores(ctx context.Context, corteID int64, ss []SeparadorCorte) error
}

// Observador recebe a telemetria do motor: duração por etapa e volumes
// da execução. Injetado, nunca amarrado a um backend específico.
type Observador interface {
	Etapa(nome string, d time.Duration)
	Volumes(total, ok, atendido, cortado int)
}

type naoObserva struct{}

func (naoObserva) Etapa(string, time.Duration) {}
func (naoObserva) Volumes(int, int, int, int)  {}

const paginaDemandaPadrao = 1000

type Engine struct {
	log     *slog.Logger
	estoque FeedEstoque
	demanda FeedDemanda
	sink    Sink
	obs     Observador

	paginaDemanda int
	agora         func() time.Time
}

func NewEngine(log *slog.Logger, fe FeedEstoque, fd FeedDemanda, sink Sink, obs Observador, paginaDemanda int) *Engine {
	if obs == nil {
		obs = naoObserva{}
	}
	if paginaDemanda <= 0 {
		paginaDemanda = paginaDemandaPadrao
	}
	return &Engine{
		log:           log,
		estoque:       fe,
		demanda:       fd,
		sink:          sink,
		obs:           obs,
		paginaDemanda: paginaDemanda,
		agora:         time.Now,
	}
}

// Gerar executa o pipeline completo para um setor/data: consolida o
// estoque, drena a demanda, classifica e agrega linha a linha, monta o
// ranking e grava o relatório (gravação best-effort — falha de
// persistência não derruba o resultado já calculado).
func (e *Engine) Gerar(ctx context.Context, setor, data string) (*Resultado, error) {
	deposito := DepositoParaSetor(setor)
	e.log.Info("iniciando cálculo de corte", "setor", setor, "data", data, "deposito", deposito)

	inicio := time.Now()
	linhasEstoque, err := e.estoque.Listar(ctx, deposito)
	if err != nil {
		return nil, &ErroFeed{Feed: "estoque", Err: err}
	}
	if len(linhasEstoque) == 0 {
		return nil, ErrSemEstoque
	}
	cadastro := ConsolidarEstoque(linhasEstoque)
	e.obs.Etapa("consolidar_estoque", time.Since(inicio))
	e.log.Info("estoque consolidado", "linhas", len(linhasEstoque), "materiais", len(cadastro))

	inicio = time.Now()
	linhasDemanda, err := e.drenarDemanda(ctx, deposito)
	if err != nil {
		return nil, err
	}
	if len(linhasDemanda) == 0 {
		return nil, ErrSemDemanda
	}
	e.obs.Etapa("drenar_demanda", time.Since(inicio))
	e.log.Info("demanda carregada", "linhas", len(linhasDemanda))

	inicio = time.Now()
	cache := NovoCacheNT(linhasDemanda)

	ag := novoAgregador()
	for _, l := range linhasDemanda {
		ag.registrar(l, Classificar(l, cadastro), UsuarioResponsavel(l, cache), cadastro)
	}
	materiais, separadores := ag.fechar()
	ordenarMateriais(materiais)
	ordenarSeparadores(separadores)
	e.obs.Etapa("classificar_agregar", time.Since(inicio))

	resumo := montarResumo(setor, ag)
	e.obs.Volumes(resumo.VolumeTotal, resumo.VolumeOK, resumo.VolumeAtendido, resumo.VolumeCortado)
	e.log.Info("processamento concluído",
		"volume_total", resumo.VolumeTotal,
		"volume_ok", resumo.VolumeOK,
		"volume_atendido", resumo.VolumeAtendido,
		"volume_cortado", resumo.VolumeCortado,
		"percentual_corte", resumo.PercentualCorte,
	)

	res := &Resultado{
		Setor:          setor,
		Data:           data,
		DepositoCodigo: deposito,
		Resumo:         resumo,
		Materiais:      materiais,
		Separadores:    separadores,
		Debug: Debug{
			TotalDemandaProcessada: len(linhasDemanda),
			TotalMateriaisEstoque:  len(cadastro),
			CacheUsuariosNT:        len(cache),
		},
		GeradoEm: e.agora(),
	}

	inicio = time.Now()
	e.persistir(ctx, res)
	e.obs.Etapa("persistir", time.Since(inicio))

	return res, nil
}

// drenarDemanda consome o feed página a página até esvaziar,
// independentemente do tamanho de página do feed.
func (e *Engine) drenarDemanda(ctx context.Context, deposito string) ([]demanda.Linha, error) {
	var todas []demanda.Linha
	for offset := 0; ; offset += e.paginaDemanda {
		pagina, err := e.demanda.Pagina(ctx, deposito, offset, e.paginaDemanda)
		if err != nil {
			return nil, &ErroFeed{Feed: "demanda", Err: err}
		}
		if len(pagina) == 0 {
			break
		}
		todas = append(todas, pagina...)
		if len(pagina) < e.paginaDemanda {
			break
		}
	}
	return todas, nil
}

// persistir grava o relatório. Falha no pai → filhos nem são tentados e
// CorteID fica nulo; falha em filhos só é logada. Em nenhum caso o
// resultado calculado é descartado.
func (e *Engine) persistir(ctx context.Context, res *Resultado) {
	if e.sink == nil {
		return
	}

	c := &Corte{
		Setor:                  res.Setor,
		Data:                   res.Data,
		DepositoCodigo:         res.DepositoCodigo,
		VolumeTotal:            res.Resumo.VolumeTotal,
		VolumeOK:               res.Resumo.VolumeOK,
		VolumeAtendido:         res.Resumo.VolumeAtendido,
		VolumeCortado:          res.Resumo.VolumeCortado,
		PercentualCorte:        res.Resumo.PercentualCorte,
		TotalMateriaisCortados: len(res.Materiais),
		TotalSeparadores:       len(res.Separadores),
		DataProcessamento:      res.GeradoEm,
	}

	id, err := e.sink.InserirCorte(ctx, c)
	if err != nil {
		e.log.Error("erro ao salvar corte", "err", err)
		return
	}
	res.CorteID = &id
	e.log.Info("corte salvo", "corte_id", id)

	if len(res.Materiais) > 0 {
		if err := e.sink.InserirMateriais(ctx, id, res.Materiais); err != nil {
			e.log.Error("erro ao salvar materiais cortados", "corte_id", id, "err", err)
		}
	}
	if len(res.Separadores) > 0 {
		if err := e.sink.InserirSeparadores(ctx, id, res.Separadores); err != nil {
			e.log.Error("erro ao salvar separadores", "corte_id", id, "err", err)
		}
	}
}
