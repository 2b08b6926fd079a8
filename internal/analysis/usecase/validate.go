package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
)

var competitorPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.-]+$`)

// validateCompetitors trims every slot and drops the empty ones. Nothing is
// returned unless every remaining name is valid.
func validateCompetitors(slots []string) ([]string, error) {
	if len(slots) > analysis.MaxCompetitors {
		return nil, analysis.ErrTooManyCompetitors
	}

	names := make([]string, 0, len(slots))
	for i, slot := range slots {
		name := strings.TrimSpace(slot)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) < analysis.MinCompetitorRunes {
			return nil, fmt.Errorf("%w: slot %d", analysis.ErrCompetitorTooShort, i+1)
		}
		if !competitorPattern.MatchString(name) {
			return nil, fmt.Errorf("%w: slot %d", analysis.ErrInvalidCompetitor, i+1)
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, analysis.ErrNoCompetitors
	}
	return names, nil
}

func normalizeMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", model.ModeStandard, "regular":
		return model.ModeStandard, nil
	case model.ModeDeep:
		return model.ModeDeep, nil
	default:
		return "", analysis.ErrInvalidMode
	}
}
