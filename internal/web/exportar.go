package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// exportar gera um .xlsx com o relatório persistido: aba de resumo, aba
// de materiais cortados e aba de separadores.
func (h *Handler) exportar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		escreveErro(w, http.StatusBadRequest, "ID inválido", "")
		return
	}

	c, materiais, separadores, err := h.cortes.GetCorte(r.Context(), id)
	if err != nil {
		h.log.Error("erro ao buscar corte para exportação", "corte_id", id, "err", err)
		escreveErro(w, http.StatusInternalServerError, "Erro interno do servidor", "")
		return
	}
	if c == nil {
		escreveErro(w, http.StatusNotFound, "Corte não encontrado", "")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	abaResumo := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(abaResumo, "Resumo"); err == nil {
		abaResumo = "Resumo"
	}

	linhasResumo := [][]interface{}{
		{"Setor", c.Setor},
		{"Data", c.Data},
		{"Depósito", c.DepositoCodigo},
		{"Volume total", c.VolumeTotal},
		{"Volume no cadastro", c.VolumeOK},
		{"Volume atendido", c.VolumeAtendido},
		{"Volume cortado", c.VolumeCortado},
		{"Percentual de corte", c.PercentualCorte},
		{"Processado em", c.DataProcessamento.Format("02/01/2006 15:04:05")},
	}
	for i := range linhasResumo {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
			return
		}
		if err := f.SetSheetRow(abaResumo, cell, &linhasResumo[i]); err != nil {
			escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
			return
		}
	}

	if _, err := f.NewSheet("Materiais"); err != nil {
		escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
		return
	}
	cab := []interface{}{"Material", "Descrição", "Total cortado", "Linhas cortadas", "Separadores"}
	if err := f.SetSheetRow("Materiais", "A1", &cab); err != nil {
		escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
		return
	}
	for i, m := range materiais {
		linha := []interface{}{m.Material, m.Descricao, m.TotalCortado, m.LinhasCortadas, m.UsuariosCortaram}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err == nil {
			err = f.SetSheetRow("Materiais", cell, &linha)
		}
		if err != nil {
			escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
			return
		}
	}

	if _, err := f.NewSheet("Separadores"); err != nil {
		escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
		return
	}
	cab = []interface{}{"Usuário", "Nome", "Total atendido", "Total cortado", "Percentual de corte"}
	if err := f.SetSheetRow("Separadores", "A1", &cab); err != nil {
		escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
		return
	}
	for i, s := range separadores {
		linha := []interface{}{s.Usuario, s.NomeUsuario, s.TotalAtendido, s.TotalCortado, s.PercentualCorte}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err == nil {
			err = f.SetSheetRow("Separadores", cell, &linha)
		}
		if err != nil {
			escreveErro(w, http.StatusInternalServerError, "Erro ao montar arquivo", "")
			return
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		escreveErro(w, http.StatusInternalServerError, "Erro ao escrever arquivo", "")
		return
	}

	nome := fmt.Sprintf("corte_%s_%s.xlsx", c.Setor, c.Data)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
