package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"consorcio-simulator/domain"
	"consorcio-simulator/report"
	"consorcio-simulator/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate handles POST /consorcio/simulate.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, errMethodNotAllowed)
		return
	}

	var input domain.ContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	sim, err := h.service.Simulate(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report.NewView(sim))
}

// GetSimulation handles GET /consorcio/simulations/{id}.
func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, errMethodNotAllowed)
		return
	}

	sim, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report.NewView(sim))
}

// Report handles GET /consorcio/simulations/{id}/report?format=md|html.
func (h *SimulationHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, errMethodNotAllowed)
		return
	}

	sim, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		err = report.Markdown(w, sim)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = report.HTML(w, sim)
	default:
		writeError(w, r, newAppError("BAD_REQUEST", "formato de relatório não suportado", http.StatusBadRequest))
		return
	}
	if err != nil {
		writeError(w, r, err)
	}
}
