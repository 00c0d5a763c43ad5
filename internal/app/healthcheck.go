package app

import (
	"net/http"
)

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

func (app *application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthcheckResponse{
		Status: "UP",
		SystemInfo: SystemInfo{
			Version:     version,
			Environment: app.config.env,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
