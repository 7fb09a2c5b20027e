package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/repository"
)

// analyticsFetchLimit caps how many attempts a single report considers.
// Generous enough to mean "all" for a normal user.
const analyticsFetchLimit = 1000

// weakModuleThreshold is the mean score below which a subject/module
// pair counts as weak.
const weakModuleThreshold = 60.0

// trendLength is how many of the most recent attempts the score trend
// covers.
const trendLength = 10

type AnalyticsService struct {
	Repo *repository.AttemptRepository
}

func NewAnalyticsService(repo *repository.AttemptRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

// Report aggregates a user's full attempt history. A user with no
// attempts gets the zero report. Read-only: calling it repeatedly with
// no intervening submissions returns identical results.
func (s *AnalyticsService) Report(ctx context.Context, userID string) (*models.AnalyticsReport, error) {
	attempts, err := s.Repo.FindByUser(ctx, userID, analyticsFetchLimit)
	if err != nil {
		return nil, err
	}
	return buildReport(attempts), nil
}

func buildReport(attempts []models.QuizAttempt) *models.AnalyticsReport {
	if len(attempts) == 0 {
		return &models.AnalyticsReport{
			SubjectPerformance: map[string]models.SubjectPerformance{},
			ScoreTrend:         []models.TrendPoint{},
			WeakModules:        []models.WeakModule{},
		}
	}

	totalScore := 0.0
	for _, a := range attempts {
		totalScore += a.ScorePercentage
	}

	return &models.AnalyticsReport{
		TotalQuizzes:       len(attempts),
		AverageScore:       round2(totalScore / float64(len(attempts))),
		SubjectPerformance: subjectPerformance(attempts),
		ScoreTrend:         scoreTrend(attempts),
		WeakModules:        weakModules(attempts),
	}
}

func subjectPerformance(attempts []models.QuizAttempt) map[string]models.SubjectPerformance {
	perf := make(map[string]models.SubjectPerformance)
	for _, a := range attempts {
		p := perf[a.Subject]
		p.Total++
		p.ScoreSum += a.ScorePercentage
		perf[a.Subject] = p
	}
	for subject, p := range perf {
		p.Average = p.ScoreSum / float64(p.Total)
		perf[subject] = p
	}
	return perf
}

// scoreTrend is the last trendLength attempts in ascending
// chronological order.
func scoreTrend(attempts []models.QuizAttempt) []models.TrendPoint {
	sorted := make([]models.QuizAttempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	if len(sorted) > trendLength {
		sorted = sorted[len(sorted)-trendLength:]
	}
	trend := make([]models.TrendPoint, 0, len(sorted))
	for _, a := range sorted {
		trend = append(trend, models.TrendPoint{
			Date:    a.Timestamp,
			Score:   a.ScorePercentage,
			Subject: a.Subject,
		})
	}
	return trend
}

// weakModules groups attempts by "<Subject> - <Module>" and keeps the
// groups averaging strictly below the threshold. Output order follows
// map iteration and is unspecified.
func weakModules(attempts []models.QuizAttempt) []models.WeakModule {
	type group struct {
		total    int
		scoreSum float64
	}
	groups := make(map[string]group)
	for _, a := range attempts {
		key := fmt.Sprintf("%s - %s", a.Subject, a.Module)
		g := groups[key]
		g.total++
		g.scoreSum += a.ScorePercentage
		groups[key] = g
	}

	weak := []models.WeakModule{}
	for key, g := range groups {
		avg := g.scoreSum / float64(g.total)
		if avg < weakModuleThreshold {
			weak = append(weak, models.WeakModule{Module: key, AverageScore: avg})
		}
	}
	return weak
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
