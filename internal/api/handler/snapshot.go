package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/snapshotting"
	"github.com/vfg2006/ad-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analyst-api/pkg/log"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

const defaultSnapshotListLimit = 30

// CreateSnapshot dispara a captura manual do snapshot da conta, da saúde de
// eventos e dos diagnósticos para a data. Sem data, captura o dia anterior
func CreateSnapshot(snapshotService snapshotting.Snapshotter, analystService analyzing.Analyst) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  r.URL.Query().Get("date"),
				"error": err.Error(),
			}).Warn("snapshots: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		if date.IsZero() {
			*date = utils.StartOfDay(time.Now().AddDate(0, 0, -1))
		}

		logger.WithFields(log.Fields{
			"date": date.Format(time.DateOnly),
		}).Info("snapshots: manual capture requested")

		snapshot, err := snapshotService.CreateDailySnapshot(*date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("snapshots: failed to capture account snapshot")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao capturar o snapshot da conta", nil)
			return
		}

		// A saúde de eventos e os diagnósticos são capturas complementares:
		// falhas aqui não invalidam o snapshot já persistido
		eventsHealth, err := snapshotService.CreateEventsHealthSnapshot(*date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Warn("snapshots: failed to capture events health")
		}

		if err := analystService.EnsureDiagnostics(*date); err != nil {
			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Warn("snapshots: failed to compute diagnostics")
		}

		response := map[string]any{
			"snapshot":      snapshot,
			"events_health": eventsHealth,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListSnapshots lista os snapshots mais recentes da conta
func ListSnapshots(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultSnapshotListLimit
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido, use um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.ListSnapshots(limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"limit": limit,
				"error": err.Error(),
			}).Error("snapshots: failed to list snapshots")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar snapshots", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
