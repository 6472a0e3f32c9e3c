package services

import (
	"sort"

	"github.com/stridehq/stride/internal/models"
)

const (
	maxGoalNameLength     = 80
	maxCategoryNameLength = 40
)

type GoalStore interface {
	All() ([]models.Goal, error)
	Upsert(goal *models.Goal) error
}

type GoalCategoryStore interface {
	All() ([]models.GoalCategory, error)
	Upsert(category *models.GoalCategory) error
}

type GoalService struct {
	goals      GoalStore
	categories GoalCategoryStore
}

func NewGoalService(goals GoalStore, categories GoalCategoryStore) *GoalService {
	return &GoalService{goals: goals, categories: categories}
}

func (service *GoalService) Categories() ([]models.GoalCategory, error) {
	all, err := service.categories.All()
	if err != nil {
		return nil, err
	}
	categories := activeRecords(all)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (service *GoalService) Goals() ([]models.Goal, error) {
	all, err := service.goals.All()
	if err != nil {
		return nil, err
	}
	goals := activeRecords(all)
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	return goals, nil
}

func (service *GoalService) SaveCategory(category *models.GoalCategory) error {
	if err := validateRequiredText("name", category.Name, maxCategoryNameLength); err != nil {
		return err
	}

	ensureIdentity(&category.Meta)
	return service.categories.Upsert(category)
}

// SaveGoal stores the goal. The category reference is not checked: orphaned
// references are tolerated.
func (service *GoalService) SaveGoal(goal *models.Goal) error {
	if err := validateRequiredText("name", goal.Name, maxGoalNameLength); err != nil {
		return err
	}

	ensureIdentity(&goal.Meta)
	return service.goals.Upsert(goal)
}

// ToggleGoal flips the completed flag. A missing id is a no-op, not an error.
func (service *GoalService) ToggleGoal(id string) error {
	goals, err := service.Goals()
	if err != nil {
		return err
	}
	for index := range goals {
		if goals[index].ID == id {
			goals[index].IsCompleted = !goals[index].IsCompleted
			return service.goals.Upsert(&goals[index])
		}
	}
	return nil
}
