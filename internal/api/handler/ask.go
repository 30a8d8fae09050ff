package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analyst-api/pkg/log"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

// AskRequest é o corpo da pergunta ad-hoc sobre a conta
type AskRequest struct {
	Question string `json:"question"`
	Date     string `json:"date,omitempty"`
}

func Ask(service analyzing.Analyst) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request AskRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("ask: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(request.Question) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta não informada", nil)
			return
		}

		date, err := utils.ParseDate(request.Date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  request.Date,
				"error": err.Error(),
			}).Warn("ask: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		if date.IsZero() {
			*date = utils.StartOfDay(time.Now())
		}

		logger.WithFields(log.Fields{
			"date": date.Format(time.DateOnly),
		}).Info("ask: answering question about account performance")

		result, err := service.AnswerQuestion(r.Context(), request.Question, *date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("ask: failed to answer question")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar a resposta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("ask: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
