package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fittrackhq/fittrack/internal/models"
)

var (
	ErrCriteriaTargetInvalid    = errors.New("criteria target must be at least 1")
	ErrCriteriaUnitMissing      = errors.New("criteria unit is required")
	ErrCriteriaUnitUnknown      = errors.New("unknown criteria unit")
	ErrCriteriaConditionUnknown = errors.New("unknown criteria condition")
	ErrAchievementTypeUnknown   = errors.New("unknown achievement type")
	ErrAchievementRarityUnknown = errors.New("unknown achievement rarity")
)

// ValidateAchievementDefinition checks a catalog entry once, at load
// time. Evaluation passes never re-validate: a definition that passes
// here is safe to score against user stats.
func ValidateAchievementDefinition(definition models.AchievementDefinition) error {
	if !containsString(models.AchievementTypes(), definition.Type) {
		return fmt.Errorf("%w: %q", ErrAchievementTypeUnknown, definition.Type)
	}
	if !containsString(models.AchievementRarities(), definition.Rarity) {
		return fmt.Errorf("%w: %q", ErrAchievementRarityUnknown, definition.Rarity)
	}
	if definition.CriteriaTarget < 1 {
		return fmt.Errorf("%w: got %d", ErrCriteriaTargetInvalid, definition.CriteriaTarget)
	}
	if strings.TrimSpace(definition.CriteriaUnit) == "" {
		return ErrCriteriaUnitMissing
	}
	if !containsString(models.AchievementCriteriaUnits(), definition.CriteriaUnit) {
		return fmt.Errorf("%w: %q", ErrCriteriaUnitUnknown, definition.CriteriaUnit)
	}
	if definition.CriteriaCondition != "" && !containsString(models.AchievementCriteriaConditions(), definition.CriteriaCondition) {
		return fmt.Errorf("%w: %q", ErrCriteriaConditionUnknown, definition.CriteriaCondition)
	}
	return nil
}

// CatalogProblem pairs a rejected definition with the reason, so the
// caller can log it and move on without aborting the rest of the load.
type CatalogProblem struct {
	Code string
	Err  error
}

// FilterValidDefinitions drops malformed catalog entries. One bad
// definition never blocks the others from being evaluated.
func FilterValidDefinitions(definitions []models.AchievementDefinition) ([]models.AchievementDefinition, []CatalogProblem) {
	valid := make([]models.AchievementDefinition, 0, len(definitions))
	problems := make([]CatalogProblem, 0)
	for _, definition := range definitions {
		if err := ValidateAchievementDefinition(definition); err != nil {
			problems = append(problems, CatalogProblem{Code: definition.Code, Err: err})
			continue
		}
		valid = append(valid, definition)
	}
	return valid, problems
}

func containsString(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
