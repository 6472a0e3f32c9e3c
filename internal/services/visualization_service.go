package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/textgen"
)

const (
	maxVisualizationTitleLength   = 80
	maxVisualizationContentLength = 1200

	// LocalFallbackProvider labels snapshots built from the deterministic
	// template when the external text provider yields nothing usable.
	LocalFallbackProvider = "Local Fallback"

	snapshotTitle = "AI Motivation Snapshot"
)

type VisualizationStore interface {
	All() ([]models.VisualizationItem, error)
	Upsert(item *models.VisualizationItem) error
}

type VisualizationGoalReader interface {
	Goals() ([]models.Goal, error)
}

type VisualizationMoodReader interface {
	Logs() ([]models.MoodLog, error)
}

type VisualizationService struct {
	items     VisualizationStore
	goals     VisualizationGoalReader
	moods     VisualizationMoodReader
	generator textgen.Generator
}

func NewVisualizationService(items VisualizationStore, goals VisualizationGoalReader, moods VisualizationMoodReader, generator textgen.Generator) *VisualizationService {
	return &VisualizationService{
		items:     items,
		goals:     goals,
		moods:     moods,
		generator: generator,
	}
}

// Visualizations returns active items, newest first.
func (service *VisualizationService) Visualizations() ([]models.VisualizationItem, error) {
	all, err := service.items.All()
	if err != nil {
		return nil, err
	}
	items := activeRecords(all)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (service *VisualizationService) SaveVisualization(item *models.VisualizationItem) error {
	if err := validateRequiredText("title", item.Title, maxVisualizationTitleLength); err != nil {
		return err
	}
	if err := validateRequiredText("content", item.Content, maxVisualizationContentLength); err != nil {
		return err
	}

	ensureIdentity(&item.Meta)
	return service.items.Upsert(item)
}

// GenerateSnapshot builds a motivational visualization from the user's
// active goals and recent mood. The external provider may fail or return
// garbage; either way the caller gets a usable item, falling back to a
// deterministic local template. The item is returned unsaved so the caller
// can preview before persisting.
func (service *VisualizationService) GenerateSnapshot(ctx context.Context) (models.VisualizationItem, error) {
	goals, err := service.goals.Goals()
	if err != nil {
		return models.VisualizationItem{}, err
	}
	moods, err := service.moods.Logs()
	if err != nil {
		return models.VisualizationItem{}, err
	}

	activeGoals := make([]string, 0, 3)
	for _, goal := range goals {
		if goal.IsCompleted {
			continue
		}
		activeGoals = append(activeGoals, goal.Name)
		if len(activeGoals) == 3 {
			break
		}
	}
	moodLevel := recentMoodAverage(moods, 7)

	text := ""
	provider := ""
	if service.generator != nil {
		text, provider = service.generator.Generate(ctx, buildMotivationPrompt(activeGoals, moodLevel))
	}
	content := text
	if strings.TrimSpace(content) == "" {
		content = buildFallbackContent(activeGoals, moodLevel)
		provider = LocalFallbackProvider
	}

	item := models.VisualizationItem{
		Title:         snapshotTitle,
		IsTangible:    false,
		IsAIGenerated: true,
		AIProvider:    provider,
		Content:       truncateRunes(strings.TrimSpace(content), maxVisualizationContentLength),
	}
	ensureIdentity(&item.Meta)
	return item, nil
}

// recentMoodAverage averages the newest mood scales, defaulting to a neutral
// 3 when no logs exist.
func recentMoodAverage(logs []models.MoodLog, limit int) float64 {
	if len(logs) > limit {
		logs = logs[:limit]
	}
	if len(logs) == 0 {
		return 3
	}
	sum := 0
	for _, entry := range logs {
		sum += entry.Scale
	}
	return float64(sum) / float64(len(logs))
}

func buildMotivationPrompt(activeGoals []string, moodLevel float64) string {
	goalsText := "create momentum with one meaningful habit today"
	if len(activeGoals) > 0 {
		goalsText = strings.Join(activeGoals, ", ")
	}
	return fmt.Sprintf(
		"Write a short motivational visualization (80-140 words) for a habit tracker user. Mood level: %s. Focus goals: %s. Keep it practical, positive, and specific.",
		moodLabel(moodLevel),
		goalsText,
	)
}

func buildFallbackContent(activeGoals []string, moodLevel float64) string {
	focus := "one meaningful win today"
	if len(activeGoals) > 0 {
		focus = strings.Join(activeGoals, ", ")
	}
	return fmt.Sprintf(
		"Visualize a %s day where you complete %s. Start with 20 focused minutes, remove one distraction, and finish with a short review. Keep the goal small but non-negotiable so momentum compounds by evening.",
		moodTone(moodLevel),
		focus,
	)
}

func moodLabel(moodLevel float64) string {
	switch {
	case moodLevel >= 4:
		return "high"
	case moodLevel >= 3:
		return "steady"
	default:
		return "low"
	}
}

func moodTone(moodLevel float64) string {
	switch {
	case moodLevel >= 4:
		return "confident"
	case moodLevel >= 3:
		return "steady"
	default:
		return "gentle"
	}
}

func truncateRunes(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength])
}
