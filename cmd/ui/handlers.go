package main

import (
	"encoding/json"
	"net/http"
	"time"

	"dmarket-arbitrage-bot/internal/models"
	"dmarket-arbitrage-bot/internal/report"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log *zap.Logger
	db  *gorm.DB
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, db *gorm.DB) *APIHandler {
	return &APIHandler{log: log, db: db}
}

// TradesHandler returns all recorded trades, most recent first.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	var trades []models.Trade
	if err := h.db.Order("timestamp desc").Find(&trades).Error; err != nil {
		h.log.Error("Failed to get trades from database", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trades)
}

// StatisticsHandler calculates and returns trading statistics.
func (h *APIHandler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := report.Build(h.db, time.Now())
	if err != nil {
		h.log.Error("Failed to build statistics", zap.Error(err))
		http.Error(w, "Failed to calculate statistics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// DailyStatsHandler returns the per-day counters, most recent first.
func (h *APIHandler) DailyStatsHandler(w http.ResponseWriter, r *http.Request) {
	var stats []models.DailyStat
	if err := h.db.Order("day desc").Find(&stats).Error; err != nil {
		h.log.Error("Failed to get daily stats from database", zap.Error(err))
		http.Error(w, "Failed to get daily stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
