package web

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/esc4n0rx/Cortex/internal/domain/corte"
)

func TestExportar(t *testing.T) {
	hist := &historicoFake{
		corte: &corte.Corte{
			ID:                7,
			Setor:             "Mercearia",
			Data:              "2024-06-01",
			DepositoCodigo:    "DP01",
			VolumeTotal:       10,
			DataProcessamento: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		materiais: []corte.MaterialSalvo{
			{Material: 10, Descricao: "ARROZ", TotalCortado: 5, LinhasCortadas: 1, UsuariosCortaram: "ALICE"},
		},
		separadores: []corte.SeparadorSalvo{
			{Usuario: "ALICE", NomeUsuario: "ALICE", TotalCortado: 5, PercentualCorte: 50},
		},
	}
	srv := servidorDeTeste(&geradorFake{}, hist, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/corte/7/exportar")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "corte_Mercearia_2024-06-01.xlsx")

	corpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(corpo))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Resumo", "Materiais", "Separadores"}, f.GetSheetList())

	material, err := f.GetCellValue("Materiais", "A2")
	require.NoError(t, err)
	assert.Equal(t, "10", material)
}

func TestExportar_NaoEncontrado(t *testing.T) {
	srv := servidorDeTeste(&geradorFake{}, &historicoFake{}, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/corte/999/exportar")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
