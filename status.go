package userposts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPath = "/metrics"
	statusPath = "/status"
)

// StatusFunc reports the state of a Context, e.g. the number of stored entities.
// The result is rendered as JSON.
type StatusFunc func(ctx context.Context) any

// RegisterStatus adds the state of a Context to the status endpoint under name.
// Registering the same name again replaces the previous StatusFunc.
func (c *Container) RegisterStatus(name string, fn StatusFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses[name] = fn
}

// StatusHandler serves the prometheus metrics and the system status.
func (c *Container) StatusHandler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricPath, promhttp.HandlerFor(
		c.PromRegistry,
		promhttp.HandlerOpts{ //nolint:exhaustruct
			EnableOpenMetrics: true, // to enable Examplars in the export format
		},
	))

	mux.HandleFunc(statusPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)

		_ = json.NewEncoder(w).Encode(c.systemStatus(r.Context()))
	})

	return mux
}

type systemStatus struct {
	Status           string         `json:"status"`
	Time             time.Time      `json:"time"`
	Uptime           string         `json:"uptime"`
	GitHash          string         `json:"gitHash"`
	OrganisationName string         `json:"organisationName"`
	ApplicationName  string         `json:"applicationName"`
	InstanceName     string         `json:"instanceName"`
	Environment      Environment    `json:"environment"`
	Web              HTTP           `json:"web"`
	Contexts         map[string]any `json:"contexts"`
}

func (c *Container) systemStatus(ctx context.Context) systemStatus {
	c.mu.Lock()
	fns := make(map[string]StatusFunc, len(c.statuses))
	for name, fn := range c.statuses {
		fns[name] = fn
	}
	c.mu.Unlock()

	// StatusFuncs run without holding the lock.
	contexts := make(map[string]any, len(fns))
	for name, fn := range fns {
		contexts[name] = fn(ctx)
	}

	return systemStatus{
		Status:           "online",
		Time:             time.Now(),
		Uptime:           time.Since(c.startedAt).Round(time.Second).String(),
		GitHash:          gitHash(),
		OrganisationName: c.Config.OrganisationName,
		ApplicationName:  c.Config.ApplicationName,
		InstanceName:     c.Config.InstanceName,
		Environment:      c.Config.Environment,
		Web:              c.Config.HTTP,
		Contexts:         contexts,
	}
}
