package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crosswalk_documents_generated_total",
		Help: "The number of metadata documents that have been generated",
	}, []string{"kind", "format"})

	generationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crosswalk_generation_errors_total",
		Help: "The number of requests that failed to produce a document",
	}, []string{"kind"})
)
