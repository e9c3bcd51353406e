package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"idsegen/internal/domain"
	"idsegen/internal/service"
)

// BatchHandler handles batch processing endpoints.
type BatchHandler struct {
	processor *service.Processor
	log       zerolog.Logger
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(processor *service.Processor, log zerolog.Logger) *BatchHandler {
	return &BatchHandler{processor: processor, log: log}
}

// Process validates a submitted batch, generates the IDSE files for every
// accepted movement and returns the report plus the generated file metadata.
// A body that cannot be parsed into the batch shape is a single batch-level
// error, never folded into per-movement statistics.
func (h *BatchHandler) Process(c *gin.Context) {
	var batch domain.Batch
	if err := c.ShouldBindJSON(&batch); err != nil {
		RespondError(c, http.StatusBadRequest, "BATCH_MALFORMADO", "el cuerpo no es un batch JSON válido: "+err.Error())
		return
	}

	res, err := h.processor.Process(c.Request.Context(), &batch)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status >= http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("procesamiento de batch falló")
		}
		RespondError(c, status, code, msg)
		return
	}

	RespondOK(c, res)
}
