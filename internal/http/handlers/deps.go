package handlers

import (
	"dealscope/internal/analytics"
	"dealscope/internal/config"
	"dealscope/internal/provider"
	"dealscope/internal/repos"
	"dealscope/internal/scoring"
	"dealscope/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AnalyzeHandler *AnalyzeHandler
	StatsHandler   *StatsHandler
	HistoryHandler *HistoryHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, agg *analytics.Aggregator) *Deps {
	histRepo := repos.NewHistoryRepo(db)

	engine := scoring.NewEngine(cfg.EthicalFloor)
	analysisSvc := services.NewAnalysisService(provider.NewDeterministic(), engine, agg, histRepo)
	analyticsSvc := services.NewAnalyticsService(agg, histRepo)

	return &Deps{
		AnalyzeHandler: &AnalyzeHandler{Analysis: analysisSvc},
		StatsHandler:   &StatsHandler{Analytics: analyticsSvc},
		HistoryHandler: &HistoryHandler{Analytics: analyticsSvc},
	}
}
