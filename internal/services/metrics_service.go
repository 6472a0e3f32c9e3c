package services

import (
	"math"
	"time"

	"github.com/stridehq/stride/internal/models"
)

// moodSampleSize bounds the mood average to the most recent logs.
const moodSampleSize = 14

type MetricsRoutineReader interface {
	LogsForRange(from models.Date, to models.Date) ([]models.RoutineLog, error)
}

type MetricsTaskReader interface {
	Tasks() ([]models.Task, error)
	LogsForRange(from models.Date, to models.Date) ([]models.TaskLog, error)
}

type MetricsMoodReader interface {
	Logs() ([]models.MoodLog, error)
}

// DashboardMetrics is a derived snapshot; nothing is persisted computing it.
type DashboardMetrics struct {
	WeeklyCompletionPercent  float64 `json:"weeklyCompletionPercent"`
	MonthlyCompletionPercent float64 `json:"monthlyCompletionPercent"`
	YearlyCompletionPercent  float64 `json:"yearlyCompletionPercent"`
	TaskPerformanceRatio     float64 `json:"taskPerformanceRatio"`
	MoodAverage              float64 `json:"moodAverage"`
}

type MetricsService struct {
	routines MetricsRoutineReader
	tasks    MetricsTaskReader
	moods    MetricsMoodReader
}

func NewMetricsService(routines MetricsRoutineReader, tasks MetricsTaskReader, moods MetricsMoodReader) *MetricsService {
	return &MetricsService{
		routines: routines,
		tasks:    tasks,
		moods:    moods,
	}
}

// ComputeDashboardMetrics reduces the trailing-week, month-to-date and
// year-to-date windows ending at today into one snapshot. Deterministic for
// a fixed store state and a fixed today.
func (service *MetricsService) ComputeDashboardMetrics(today models.Date) (DashboardMetrics, error) {
	weekStart := today.AddDays(-6)
	monthStart := models.NewDate(today.Year(), today.Month(), 1)
	yearStart := models.NewDate(today.Year(), time.January, 1)

	weekly, err := service.routines.LogsForRange(weekStart, today)
	if err != nil {
		return DashboardMetrics{}, err
	}
	monthly, err := service.routines.LogsForRange(monthStart, today)
	if err != nil {
		return DashboardMetrics{}, err
	}
	yearly, err := service.routines.LogsForRange(yearStart, today)
	if err != nil {
		return DashboardMetrics{}, err
	}

	tasks, err := service.tasks.Tasks()
	if err != nil {
		return DashboardMetrics{}, err
	}
	taskLogs, err := service.tasks.LogsForRange(weekStart, today)
	if err != nil {
		return DashboardMetrics{}, err
	}

	moods, err := service.moods.Logs()
	if err != nil {
		return DashboardMetrics{}, err
	}

	return DashboardMetrics{
		WeeklyCompletionPercent:  completionPercent(weekly),
		MonthlyCompletionPercent: completionPercent(monthly),
		YearlyCompletionPercent:  completionPercent(yearly),
		TaskPerformanceRatio:     taskPerformanceRatio(tasks, taskLogs),
		MoodAverage:              moodAverage(moods, moodSampleSize),
	}, nil
}

func completionPercent(logs []models.RoutineLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	followed := 0
	for _, entry := range logs {
		if entry.Status == models.StatusFollowed {
			followed++
		}
	}
	return roundTo(float64(followed)/float64(len(logs))*100, 1)
}

func taskPerformanceRatio(tasks []models.Task, logs []models.TaskLog) float64 {
	counted := make([]models.TaskLog, 0, len(logs))
	for _, entry := range logs {
		if !entry.Ignored {
			counted = append(counted, entry)
		}
	}
	if len(tasks) == 0 || len(counted) == 0 {
		return 0
	}

	targetSum := 0.0
	for _, task := range tasks {
		targetSum += task.TargetHours
	}
	if targetSum <= 0 {
		return 0
	}

	actualSum := 0.0
	for _, entry := range counted {
		actualSum += entry.Hours
	}
	return roundTo(actualSum/targetSum, 2)
}

// moodAverage expects logs sorted most recent first, as MoodService.Logs
// returns them.
func moodAverage(logs []models.MoodLog, limit int) float64 {
	if len(logs) > limit {
		logs = logs[:limit]
	}
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range logs {
		sum += entry.Scale
	}
	return float64(sum) / float64(len(logs))
}

func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
