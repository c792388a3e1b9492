package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "confhall",
		Name:      "uploads_total",
		Help:      "Total bulk uploads broken down by collection kind and result.",
	}, []string{"kind", "result"})

	uploadRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "confhall",
		Name:      "upload_rows_total",
		Help:      "Rows committed and dropped during bulk uploads.",
	}, []string{"kind", "outcome"})

	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "confhall",
		Name:      "exports_total",
		Help:      "Total CSV exports broken down by collection kind and result.",
	}, []string{"kind", "result"})
)

func RecordUpload(kind string, committed, dropped int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	uploadsTotal.WithLabelValues(kind, result).Inc()
	if err == nil {
		uploadRowsTotal.WithLabelValues(kind, "committed").Add(float64(committed))
		uploadRowsTotal.WithLabelValues(kind, "dropped").Add(float64(dropped))
	}
}

func RecordExport(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	exportsTotal.WithLabelValues(kind, result).Inc()
}
