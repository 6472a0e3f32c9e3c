package services

import (
	"sort"

	"github.com/stridehq/stride/internal/models"
)

const maxActionNameLength = 80

type ActionStore interface {
	All() ([]models.ActionItem, error)
	Upsert(item *models.ActionItem) error
}

type ActionService struct {
	actions ActionStore
}

func NewActionService(actions ActionStore) *ActionService {
	return &ActionService{actions: actions}
}

func (service *ActionService) Actions() ([]models.ActionItem, error) {
	all, err := service.actions.All()
	if err != nil {
		return nil, err
	}
	actions := activeRecords(all)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].DueDate.Before(actions[j].DueDate)
	})
	return actions, nil
}

func (service *ActionService) SaveAction(item *models.ActionItem) error {
	if err := validateRequiredText("name", item.Name, maxActionNameLength); err != nil {
		return err
	}

	ensureIdentity(&item.Meta)
	return service.actions.Upsert(item)
}

// ToggleDone flips the done flag. A missing id is a no-op, not an error.
func (service *ActionService) ToggleDone(id string) error {
	actions, err := service.Actions()
	if err != nil {
		return err
	}
	for index := range actions {
		if actions[index].ID == id {
			actions[index].IsDone = !actions[index].IsDone
			return service.actions.Upsert(&actions[index])
		}
	}
	return nil
}
