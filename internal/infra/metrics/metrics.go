package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CorteObservador implementa corte.Observador sobre Prometheus:
// histograma de duração por etapa do pipeline e contadores de linhas por
// volume de saída.
type CorteObservador struct {
	etapas    *prometheus.HistogramVec
	linhas    *prometheus.CounterVec
	execucoes prometheus.Counter
}

func NewCorteObservador(reg prometheus.Registerer) *CorteObservador {
	f := promauto.With(reg)
	return &CorteObservador{
		etapas: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cortex",
			Name:      "corte_etapa_segundos",
			Help:      "Duração de cada etapa do pipeline de corte.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"etapa"}),
		linhas: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cortex",
			Name:      "corte_linhas_total",
			Help:      "Linhas de demanda processadas, por volume de saída.",
		}, []string{"volume"}),
		execucoes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "cortex",
			Name:      "corte_execucoes_total",
			Help:      "Execuções completas do motor de corte.",
		}),
	}
}

func (o *CorteObservador) Etapa(nome string, d time.Duration) {
	o.etapas.WithLabelValues(nome).Observe(d.Seconds())
}

func (o *CorteObservador) Volumes(total, ok, atendido, cortado int) {
	o.linhas.WithLabelValues("total").Add(float64(total))
	o.linhas.WithLabelValues("ok").Add(float64(ok))
	o.linhas.WithLabelValues("atendido").Add(float64(atendido))
	o.linhas.WithLabelValues("cortado").Add(float64(cortado))
	o.execucoes.Inc()
}
