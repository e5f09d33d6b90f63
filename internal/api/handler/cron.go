package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/scheduler"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser disparadas manualmente
const (
	CronJobTypeSales       = "sales"
	CronJobTypeInstruments = "instruments"
	CronJobTypeAll         = "all"
)

// CronJobServices agrupa os agendadores que podem ser executados manualmente
type CronJobServices struct {
	SalesSyncService       *scheduler.SalesSyncService
	InstrumentsSyncService *scheduler.InstrumentsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSales:
			if services.SalesSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de vendas não disponível", nil)
				return
			}
			services.SalesSyncService.TriggerManualSync()

		case CronJobTypeInstruments:
			if services.InstrumentsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de estoque não disponível", nil)
				return
			}
			services.InstrumentsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SalesSyncService != nil {
				services.SalesSyncService.TriggerManualSync()
			}
			if services.InstrumentsSyncService != nil {
				services.InstrumentsSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Tipo de cron job inválido. Valores aceitos: sales, instruments, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.SalesSyncService != nil {
			status["sales"] = services.SalesSyncService.GetStatus()
		}
		if services.InstrumentsSyncService != nil {
			status["instruments"] = services.InstrumentsSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
