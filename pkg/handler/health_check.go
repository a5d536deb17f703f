package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"orderbot/pkg/session"
)

// HealthStatus is the /healthz response body.
type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	ActiveSessions int       `json:"activeSessions"`
}

// HealthCheckHandler responds with the bot's status and the number of
// intake flows currently in progress.
func HealthCheckHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		status := HealthStatus{
			Status:         "OK",
			Timestamp:      time.Now().UTC(),
			ActiveSessions: store.Len(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Errorf("Error encoding health status JSON: %v", err)
		}
	}
}
