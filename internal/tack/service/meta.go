package service

import (
	"strings"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
)

// MetaService exposes the value sets clients render in pickers.
type MetaService struct{}

func (MetaService) Enumerations() domain.Enumerations {
	return domain.Enumerations{
		Roles:             options(domain.Roles),
		CardStatuses:      options(domain.CardStatuses),
		CardPriorities:    options(domain.CardPriorities),
		BoardVisibilities: options(domain.Visibilities),
	}
}

func options[T ~string](values []T) []domain.Option {
	out := make([]domain.Option, 0, len(values))
	for _, v := range values {
		out = append(out, domain.Option{Label: Label(string(v)), Value: string(v)})
	}
	return out
}

// Label turns an enum value into display text: the first underscore becomes
// a space and the result is lower case, so IN_PROGRESS reads "in progress".
func Label(value string) string {
	return strings.ToLower(strings.Replace(value, "_", " ", 1))
}
