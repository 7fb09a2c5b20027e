package service

import (
	"testing"
	"time"

	"prepquiz-service/internal/models"
)

func attempt(subject, module string, score float64, at time.Time) models.QuizAttempt {
	return models.QuizAttempt{
		Subject:         subject,
		Module:          module,
		ScorePercentage: score,
		Timestamp:       at,
	}
}

func TestBuildReportEmptyHistory(t *testing.T) {
	report := buildReport(nil)
	if report.TotalQuizzes != 0 || report.AverageScore != 0 {
		t.Errorf("Expected zero report, got %+v", report)
	}
	if report.SubjectPerformance == nil || len(report.SubjectPerformance) != 0 {
		t.Error("Expected empty (non-nil) subject performance")
	}
	if report.ScoreTrend == nil || len(report.ScoreTrend) != 0 {
		t.Error("Expected empty (non-nil) score trend")
	}
	if report.WeakModules == nil || len(report.WeakModules) != 0 {
		t.Error("Expected empty (non-nil) weak modules")
	}
}

func TestBuildReportAverageRounding(t *testing.T) {
	base := time.Now()
	report := buildReport([]models.QuizAttempt{
		attempt("Physics", "Mechanics", 100.0/3.0, base),
		attempt("Physics", "Mechanics", 100.0/3.0, base.Add(time.Minute)),
		attempt("Physics", "Mechanics", 100.0/3.0, base.Add(2 * time.Minute)),
	})
	if report.TotalQuizzes != 3 {
		t.Errorf("Expected 3 quizzes, got %d", report.TotalQuizzes)
	}
	if report.AverageScore != 33.33 {
		t.Errorf("Expected average 33.33, got %v", report.AverageScore)
	}
}

func TestBuildReportSubjectPerformance(t *testing.T) {
	base := time.Now()
	report := buildReport([]models.QuizAttempt{
		attempt("Physics", "Mechanics", 80, base),
		attempt("Physics", "Thermodynamics", 60, base.Add(time.Minute)),
		attempt("Maths", "Algebra", 90, base.Add(2 * time.Minute)),
	})
	physics := report.SubjectPerformance["Physics"]
	if physics.Total != 2 || physics.Average != 70 {
		t.Errorf("Unexpected Physics performance: %+v", physics)
	}
	maths := report.SubjectPerformance["Maths"]
	if maths.Total != 1 || maths.Average != 90 {
		t.Errorf("Unexpected Maths performance: %+v", maths)
	}
}

func TestBuildReportWeakModules(t *testing.T) {
	base := time.Now()
	report := buildReport([]models.QuizAttempt{
		attempt("Chemistry", "Organic Chemistry", 40, base),
		attempt("Chemistry", "Organic Chemistry", 50, base.Add(time.Minute)),
		attempt("Chemistry", "Physical Chemistry", 85, base.Add(2 * time.Minute)),
	})
	if len(report.WeakModules) != 1 {
		t.Fatalf("Expected 1 weak module, got %+v", report.WeakModules)
	}
	weak := report.WeakModules[0]
	if weak.Module != "Chemistry - Organic Chemistry" {
		t.Errorf("Unexpected weak module key %q", weak.Module)
	}
	if weak.AverageScore != 45 {
		t.Errorf("Expected average 45, got %v", weak.AverageScore)
	}
}

func TestBuildReportWeakModuleBoundary(t *testing.T) {
	// Exactly 60 is not weak; strictly below 60 is.
	base := time.Now()
	report := buildReport([]models.QuizAttempt{
		attempt("Biology", "Genetics", 60, base),
		attempt("Biology", "Cell Biology", 59.9, base.Add(time.Minute)),
	})
	if len(report.WeakModules) != 1 || report.WeakModules[0].Module != "Biology - Cell Biology" {
		t.Errorf("Expected only Cell Biology weak, got %+v", report.WeakModules)
	}
}

func TestBuildReportTrendLastTenAscending(t *testing.T) {
	base := time.Now()
	var attempts []models.QuizAttempt
	for i := 0; i < 12; i++ {
		attempts = append(attempts, attempt("Physics", "Mechanics", float64(i), base.Add(time.Duration(i)*time.Minute)))
	}
	// Feed newest-first, as the repository returns them.
	for i, j := 0, len(attempts)-1; i < j; i, j = i+1, j-1 {
		attempts[i], attempts[j] = attempts[j], attempts[i]
	}

	report := buildReport(attempts)
	if len(report.ScoreTrend) != 10 {
		t.Fatalf("Expected trend of 10, got %d", len(report.ScoreTrend))
	}
	if report.ScoreTrend[0].Score != 2 || report.ScoreTrend[9].Score != 11 {
		t.Errorf("Expected scores 2..11, got first=%v last=%v", report.ScoreTrend[0].Score, report.ScoreTrend[9].Score)
	}
	for i := 1; i < len(report.ScoreTrend); i++ {
		if report.ScoreTrend[i].Date.Before(report.ScoreTrend[i-1].Date) {
			t.Fatal("Trend must be in ascending chronological order")
		}
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	base := time.Now()
	attempts := []models.QuizAttempt{
		attempt("Physics", "Mechanics", 70, base),
		attempt("Maths", "Calculus", 30, base.Add(time.Minute)),
	}
	first := buildReport(attempts)
	second := buildReport(attempts)
	if first.TotalQuizzes != second.TotalQuizzes || first.AverageScore != second.AverageScore {
		t.Error("Repeated aggregation over the same attempts must match")
	}
	if len(first.WeakModules) != len(second.WeakModules) {
		t.Error("Weak module sets must match across runs")
	}
}
