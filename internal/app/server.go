package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// healthHandler reports liveness for the serving mode.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// listHandler returns the labels of every loaded prior table.
func (a *App) listHandler(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(a.tables))
	for name := range a.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"priors": names}); err != nil {
		a.logger.Error("Failed to write priors list.", "error", err)
	}
}

// tableHandler returns one loaded prior table as JSON: the bounds and labels
// a sampler driver needs to construct its native prior objects.
func (a *App) tableHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	table, ok := a.tables[name]
	if !ok {
		http.Error(w, fmt.Sprintf("no prior table named %q", name), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(table); err != nil {
		a.logger.Error("Failed to write prior table.", "table", name, "error", err)
	}
}

// serveMux wires the routes of the table endpoint.
func (a *App) serveMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /priors", a.listHandler)
	mux.HandleFunc("GET /priors/{name}", a.tableHandler)
	return mux
}

// serve hosts the table endpoint until the context is cancelled.
func (a *App) serve(ctx context.Context, port int) error {
	mux := a.serveMux()
	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Prior table server starting.", "address", fmt.Sprintf("http://localhost%s/priors", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("prior table server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("prior table server shutdown failed: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
