package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/esc4n0rx/Cortex/internal/domain/corte"
)

// Gerador é o motor de corte visto pela camada HTTP.
type Gerador interface {
	Gerar(ctx context.Context, setor, data string) (*corte.Resultado, error)
}

// Historico é a leitura dos relatórios persistidos.
type Historico interface {
	GetCorte(ctx context.Context, id int64) (*corte.Corte, []corte.MaterialSalvo, []corte.SeparadorSalvo, error)
	Listar(ctx context.Context, f corte.FiltroHistorico) ([]corte.Corte, int, error)
}

// Notificador recebe o resultado quando o corte fecha acima da meta.
type Notificador interface {
	CorteAcimaDaMeta(res *corte.Resultado)
}

type Handler struct {
	log    *slog.Logger
	engine Gerador
	cortes Historico
	notif  Notificador
}

func NewHandler(log *slog.Logger, engine Gerador, cortes Historico, notif Notificador) *Handler {
	return &Handler{log: log, engine: engine, cortes: cortes, notif: notif}
}

func (h *Handler) Rotas(mux *http.ServeMux) {
	mux.HandleFunc("POST /corte/gerar", h.gerar)
	mux.HandleFunc("GET /corte/historico", h.historico)
	mux.HandleFunc("GET /corte/{id}", h.detalhe)
	mux.HandleFunc("GET /corte/{id}/exportar", h.exportar)
}

type pedidoGerar struct {
	Setor string `json:"setor"`
	Data  string `json:"data"`
}

type respostaGerar struct {
	Success           bool                   `json:"success"`
	Setor             string                 `json:"setor"`
	Data              string                 `json:"data"`
	Resumo            corte.Resumo           `json:"resumo"`
	MateriaisCortados []corte.CorteMaterial  `json:"materiais_cortados"`
	Separadores       []corte.SeparadorCorte `json:"separadores"`
	CorteID           *int64                 `json:"corte_id"`
	Debug             corte.Debug            `json:"debug"`
}

func (h *Handler) gerar(w http.ResponseWriter, r *http.Request) {
	var pedido pedidoGerar
	if err := json.NewDecoder(r.Body).Decode(&pedido); err != nil {
		escreveErro(w, http.StatusBadRequest, "corpo da requisição inválido", "")
		return
	}
	if pedido.Setor == "" || pedido.Data == "" {
		escreveErro(w, http.StatusBadRequest, "Setor e data são obrigatórios", "")
		return
	}

	res, err := h.engine.Gerar(r.Context(), pedido.Setor, pedido.Data)
	if err != nil {
		var ef *corte.ErroFeed
		switch {
		case errors.Is(err, corte.ErrSemEstoque), errors.Is(err, corte.ErrSemDemanda):
			escreveErro(w, http.StatusBadRequest, err.Error(), "")
		case errors.As(err, &ef):
			escreveErro(w, http.StatusInternalServerError, ef.Error(), "")
		default:
			h.log.Error("erro no algoritmo de corte", "err", err)
			escreveErro(w, http.StatusInternalServerError, "Erro interno do servidor", err.Error())
		}
		return
	}

	if h.notif != nil && res.Resumo.StatusMeta == corte.StatusMetaAcima {
		h.notif.CorteAcimaDaMeta(res)
	}

	escreveJSON(w, http.StatusOK, respostaGerar{
		Success:           true,
		Setor:             res.Setor,
		Data:              res.Data,
		Resumo:            res.Resumo,
		MateriaisCortados: res.TopMateriais(20),
		Separadores:       res.Separadores,
		CorteID:           res.CorteID,
		Debug:             res.Debug,
	})
}

func (h *Handler) detalhe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		escreveErro(w, http.StatusBadRequest, "ID inválido", "")
		return
	}

	c, materiais, separadores, err := h.cortes.GetCorte(r.Context(), id)
	if err != nil {
		h.log.Error("erro ao buscar corte", "corte_id", id, "err", err)
		escreveErro(w, http.StatusInternalServerError, "Erro interno do servidor", "")
		return
	}
	if c == nil {
		escreveErro(w, http.StatusNotFound, "Corte não encontrado", "")
		return
	}

	escreveJSON(w, http.StatusOK, map[string]any{
		"corte":       c,
		"materiais":   materiais,
		"separadores": separadores,
	})
}

func (h *Handler) historico(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pagina, _ := strconv.Atoi(q.Get("page"))
	limite, _ := strconv.Atoi(q.Get("limit"))
	f := corte.FiltroHistorico{
		Setor:       q.Get("setor"),
		DataInicial: q.Get("data_inicial"),
		DataFinal:   q.Get("data_final"),
		Pagina:      pagina,
		Limite:      limite,
	}
	if f.Pagina <= 0 {
		f.Pagina = 1
	}
	if f.Limite <= 0 {
		f.Limite = 20
	}

	cortes, total, err := h.cortes.Listar(r.Context(), f)
	if err != nil {
		h.log.Error("erro ao buscar histórico de cortes", "err", err)
		escreveErro(w, http.StatusInternalServerError, "Erro interno do servidor", "")
		return
	}

	totalPaginas := (total + f.Limite - 1) / f.Limite
	escreveJSON(w, http.StatusOK, map[string]any{
		"data": cortes,
		"pagination": map[string]any{
			"page":       f.Pagina,
			"limit":      f.Limite,
			"total":      total,
			"totalPages": totalPaginas,
		},
	})
}

func escreveJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func escreveErro(w http.ResponseWriter, status int, mensagem, detalhes string) {
	corpo := map[string]any{"error": mensagem}
	if detalhes != "" {
		corpo["details"] = detalhes
	}
	escreveJSON(w, status, corpo)
}
