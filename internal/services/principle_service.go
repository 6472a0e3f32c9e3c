package services

import (
	"sort"
	"strings"

	"github.com/stridehq/stride/internal/models"
)

const maxPrincipleLength = 280

type PrincipleStore interface {
	All() ([]models.LifePrinciple, error)
	Upsert(principle *models.LifePrinciple) error
}

type PrincipleService struct {
	principles PrincipleStore
}

func NewPrincipleService(principles PrincipleStore) *PrincipleService {
	return &PrincipleService{principles: principles}
}

func (service *PrincipleService) Principles() ([]models.LifePrinciple, error) {
	all, err := service.principles.All()
	if err != nil {
		return nil, err
	}
	principles := activeRecords(all)
	sort.SliceStable(principles, func(i, j int) bool {
		return principles[i].Text < principles[j].Text
	})
	return principles, nil
}

// SavePrinciple appends a new principle; principles are never edited in place.
func (service *PrincipleService) SavePrinciple(text string) error {
	if err := validateRequiredText("text", text, maxPrincipleLength); err != nil {
		return err
	}

	principle := models.LifePrinciple{Text: strings.TrimSpace(text)}
	ensureIdentity(&principle.Meta)
	return service.principles.Upsert(&principle)
}
