package services

import (
	"math"

	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

// FunnelStats is the dashboard summary across all jobs.
type FunnelStats struct {
	TotalJobs          int64            `json:"total_jobs"`
	ActiveJobs         int64            `json:"active_jobs"`
	TotalCandidates    int64            `json:"total_candidates"`
	CandidatesByStatus map[string]int64 `json:"candidates_by_status"`
	ConversionRate     float64          `json:"conversion_rate"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Funnel() (*FunnelStats, error) {
	stats := &FunnelStats{
		CandidatesByStatus: map[string]int64{
			models.StatusInProgress: 0,
			models.StatusCompleted:  0,
			models.StatusRejected:   0,
		},
	}

	if err := s.DB.Model(&models.Job{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Where("is_active = ?", true).Count(&stats.ActiveJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Candidate{}).Count(&stats.TotalCandidates).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := s.DB.Model(&models.Candidate{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.CandidatesByStatus[row.Status] = row.Count
	}

	if stats.TotalCandidates > 0 {
		rate := float64(stats.CandidatesByStatus[models.StatusCompleted]) / float64(stats.TotalCandidates) * 100
		stats.ConversionRate = math.Round(rate*10) / 10
	}
	return stats, nil
}
