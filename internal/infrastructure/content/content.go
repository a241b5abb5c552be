package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
)

//go:embed content.yaml
var defaultContent []byte

// Load parses the embedded page content.
func Load() (*entities.Content, error) {
	return Parse(defaultContent)
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*entities.Content, error) {
	var c entities.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *entities.Content) error {
	if len(c.PhonePrefixes) == 0 {
		return errors.New("content: at least one phone prefix is required")
	}
	hasDefault := false
	for _, p := range c.PhonePrefixes {
		if p.Code == domain.DefaultPhonePrefix {
			hasDefault = true
		}
	}
	if !hasDefault {
		return fmt.Errorf("content: phone prefixes must include the default %q", domain.DefaultPhonePrefix)
	}

	for _, m := range c.Metrics {
		if m.Value < 0 || m.Value > 100 {
			return fmt.Errorf("content: metric %s: value %d outside 0..100", m.Key, m.Value)
		}
		if m.Shape != entities.ShapeBar && m.Shape != entities.ShapeGauge {
			return fmt.Errorf("content: metric %s: unknown shape %q", m.Key, m.Shape)
		}
	}

	for _, t := range c.Testimonials {
		if t.Rating < 0 || t.Rating > 5 {
			return fmt.Errorf("content: testimonial %d: rating %d outside 0..5", t.ID, t.Rating)
		}
	}

	u := c.Urgency
	if u.TotalSpots <= 0 {
		return errors.New("content: urgency.total_spots must be positive")
	}
	if u.RemainingSpots < 0 || u.RemainingSpots > u.TotalSpots {
		return fmt.Errorf("content: urgency.remaining_spots %d outside 0..%d", u.RemainingSpots, u.TotalSpots)
	}
	if u.Window < 0 {
		return errors.New("content: urgency.window must not be negative")
	}
	return nil
}
