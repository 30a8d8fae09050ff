package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analyst-api/pkg/log"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

// GetDailyOverview devolve o resumo do dia, gerando-o na primeira consulta.
// Consultas seguintes para a mesma data voltam o registro persistido
func GetDailyOverview(service analyzing.Analyst) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  r.URL.Query().Get("date"),
				"error": err.Error(),
			}).Warn("overview: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		if date.IsZero() {
			*date = utils.StartOfDay(time.Now())
		}

		logger.WithFields(log.Fields{
			"date": date.Format(time.DateOnly),
		}).Info("overview: fetching daily overview")

		overview, err := service.GenerateDailyOverview(r.Context(), *date)
		if err != nil {
			var modelErr *analyzing.ModelOutputError
			if errors.As(err, &modelErr) {
				logger.WithFields(log.Fields{
					"date":   date.Format(time.DateOnly),
					"reason": modelErr.Reason,
				}).Error("overview: model returned malformed output")

				apiErrors.WriteError(w, apiErrors.ErrModelOutput, "O modelo devolveu uma resposta fora do formato esperado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("overview: failed to generate daily overview")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o resumo diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("overview: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
