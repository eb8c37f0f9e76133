package trader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// APIServer provides an HTTP interface for the scanning engine.
type APIServer struct {
	server *http.Server
	engine *Engine
	logger *zap.Logger
}

// NewAPIServer creates a new APIServer.
func NewAPIServer(engine *Engine, logger *zap.Logger) *APIServer {
	addr := fmt.Sprintf(":%d", engine.cfg.Server.Port)
	server := &http.Server{
		Addr: addr,
	}

	return &APIServer{
		server: server,
		engine: engine,
		logger: logger.Named("api-server"),
	}
}

// Start runs the HTTP server in a new goroutine.
func (s *APIServer) Start() {
	http.HandleFunc("/status", s.statusHandler)
	http.HandleFunc("/health", s.healthHandler)

	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("API server failed", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *APIServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}

func (s *APIServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	tally := s.engine.tally
	status := struct {
		UUID           string `json:"uuid"`
		Name           string `json:"name"`
		Strategy       string `json:"strategy"`
		Preset         string `json:"preset"`
		Game           string `json:"game"`
		StartTime      string `json:"start_time"`
		Uptime         string `json:"uptime"`
		TradesToday    int    `json:"trades_today"`
		SpentToday     int64  `json:"spent_today"`
		LifetimeTrades int    `json:"lifetime_trades"`
		LifetimeProfit int64  `json:"lifetime_profit"`
	}{
		UUID:           s.engine.UUID,
		Name:           s.engine.Name,
		Strategy:       s.engine.strategy.Name(),
		Preset:         s.engine.cfg.Trading.Preset,
		Game:           s.engine.cfg.Trading.Game,
		StartTime:      s.engine.StartTime.Format(time.RFC3339),
		Uptime:         time.Since(s.engine.StartTime).String(),
		TradesToday:    tally.TradesToday,
		SpentToday:     tally.SpentToday,
		LifetimeTrades: tally.LifetimeTrades,
		LifetimeProfit: tally.LifetimeProfit,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Failed to write status response", zap.Error(err))
		http.Error(w, "Failed to encode status", http.StatusInternalServerError)
	}
}

func (s *APIServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
