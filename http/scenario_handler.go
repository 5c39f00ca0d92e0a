package http

import (
	"encoding/json"
	"net/http"

	"consorcio-simulator/domain"
	"consorcio-simulator/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
}

func NewScenarioHandler(service *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

// CompareContemplation handles POST /consorcio/scenarios.
func (h *ScenarioHandler) CompareContemplation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, errMethodNotAllowed)
		return
	}

	var input domain.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	result, err := h.service.CompareContemplation(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
