package service

import (
	"context"
	"fmt"
	"strings"
)

// StaticPartnerSettings serves partner component lists parsed from configuration
type StaticPartnerSettings struct {
	components map[string][]string
}

// NewStaticPartnerSettings parses settings of the form
// "partnerA=Profile|PaymentMethod;partnerB=PaymentMethod". Partner names are
// case insensitive.
func NewStaticPartnerSettings(raw string) (*StaticPartnerSettings, error) {
	settings := &StaticPartnerSettings{components: map[string][]string{}}

	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		partner, list, found := strings.Cut(entry, "=")
		partner = strings.ToLower(strings.TrimSpace(partner))
		if !found || partner == "" {
			return nil, fmt.Errorf("invalid partner component settings entry [%s]", entry)
		}

		var components []string
		for _, component := range strings.Split(list, "|") {
			if component = strings.TrimSpace(component); component != "" {
				components = append(components, component)
			}
		}
		settings.components[partner] = components
	}

	return settings, nil
}

// GetComponentSettings returns the ordered component list of partner, or nil
func (s *StaticPartnerSettings) GetComponentSettings(ctx context.Context, partner string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.components[strings.ToLower(partner)], nil
}
