package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/esc4n0rx/Cortex/internal/domain/corte"
)

// Telegram avisa o grupo da operação quando um corte fecha acima da
// meta. Opcional: sem token/chat configurados, NewTelegram devolve nil e
// todos os métodos viram no-op.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

func NewTelegram(token string, chatID int64, log *slog.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// CorteAcimaDaMeta envia o resumo do corte. Best-effort: falha de envio
// só é logada, nunca propaga para a requisição.
func (t *Telegram) CorteAcimaDaMeta(res *corte.Resultado) {
	if t == nil {
		return
	}

	texto := fmt.Sprintf(
		"⚠️ Corte acima da meta\n\nSetor: %s (%s)\nData: %s\nPercentual: %.2f%% (meta %.0f%%)\nLinhas cortadas: %d de %d no cadastro\nMateriais afetados: %d",
		res.Setor, res.DepositoCodigo, res.Data,
		res.Resumo.PercentualCorte, res.Resumo.MetaPercentual,
		res.Resumo.VolumeCortado, res.Resumo.VolumeOK,
		len(res.Materiais),
	)

	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, texto)); err != nil {
		t.log.Error("falha ao enviar alerta de corte", "err", err)
	}
}
