package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/domain"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/diagnosing"
	"github.com/vfg2006/ad-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analyst-api/pkg/log"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

const defaultDiagnosticListLimit = 50

// GetDiagnostics consulta o histórico de diagnósticos, com filtros opcionais
// de data e categoria
func GetDiagnostics(service diagnosing.Diagnoser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var date *time.Time
		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			parsed, err := utils.ParseDate(dateParam)
			if err != nil {
				logger.WithFields(log.Fields{
					"date":  dateParam,
					"error": err.Error(),
				}).Warn("diagnostics: invalid date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido, use YYYY-MM-DD", nil)
				return
			}
			date = parsed
		}

		var diagnosticType *domain.DiagnosticType
		if typeParam := r.URL.Query().Get("type"); typeParam != "" {
			parsed, ok := domain.ParseDiagnosticType(typeParam)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de diagnóstico inválido", nil)
				return
			}
			diagnosticType = &parsed
		}

		limit := defaultDiagnosticListLimit
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido, use um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		diagnostics, err := service.GetDiagnosticHistory(date, diagnosticType, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"limit": limit,
				"error": err.Error(),
			}).Error("diagnostics: failed to fetch diagnostic history")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar diagnósticos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(diagnostics); err != nil {
			logger.WithError(err).Error("diagnostics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
