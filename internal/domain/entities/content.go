package entities

import "time"

// Content is the static, locale-independent structure of the landing page.
// Text lives in the translation catalogs; Content only references keys.
type Content struct {
	Nav           []NavItem         `yaml:"nav"`
	Features      []FeatureSpec     `yaml:"features"`
	Metrics       []MetricSpec      `yaml:"metrics"`
	Testimonials  []TestimonialSpec `yaml:"testimonials"`
	FAQ           []string          `yaml:"faq"`
	PhonePrefixes []PhonePrefix     `yaml:"phone_prefixes"`
	Urgency       UrgencySpec       `yaml:"urgency"`
}

type NavItem struct {
	Anchor string `yaml:"anchor"`
	Key    string `yaml:"key"`
}

type FeatureSpec struct {
	Key  string `yaml:"key"`
	Icon string `yaml:"icon"`
}

// MetricShape selects how a performance metric is drawn.
type MetricShape string

const (
	ShapeBar   MetricShape = "bar"
	ShapeGauge MetricShape = "gauge"
)

type MetricSpec struct {
	Key   string      `yaml:"key"`
	Value int         `yaml:"value"`
	Shape MetricShape `yaml:"shape"`
	Color string      `yaml:"color"`
}

type TestimonialSpec struct {
	ID     int `yaml:"id"`
	Rating int `yaml:"rating"`
}

type PhonePrefix struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

type UrgencySpec struct {
	TotalSpots     int           `yaml:"total_spots"`
	RemainingSpots int           `yaml:"remaining_spots"`
	Window         time.Duration `yaml:"window"`
}

// PrefixCodes returns the codes of all configured phone prefixes.
func (c *Content) PrefixCodes() []string {
	codes := make([]string, len(c.PhonePrefixes))
	for i, p := range c.PhonePrefixes {
		codes[i] = p.Code
	}
	return codes
}
