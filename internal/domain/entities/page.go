package entities

// FormState is the contact form as the visitor last saw it.
type FormState struct {
	Token     string
	Input     LeadInput
	Errors    map[string]string
	Alert     string
	Submitted bool
}

// HasError reports whether field carries an inline error.
func (f FormState) HasError(field string) bool {
	_, ok := f.Errors[field]
	return ok
}

// Page is the fully resolved view model of the landing page.
type Page struct {
	Locale        string
	Languages     []LanguageOption
	Nav           []NavLink
	Features      []Feature
	Bars          []Metric
	Gauges        []Metric
	Testimonials  []Testimonial
	FAQ           []FAQItem
	PhonePrefixes []PhonePrefix
	Urgency       Urgency
	Form          FormState
	Year          int

	translate func(key string, data map[string]any) string
}

// SetTranslator binds the resolver used by T and TWith.
func (p *Page) SetTranslator(fn func(key string, data map[string]any) string) {
	p.translate = fn
}

// T resolves key in the page locale.
func (p *Page) T(key string) string {
	if p.translate == nil {
		return key
	}
	return p.translate(key, nil)
}

// TWith resolves key with name/value pairs as ${name} parameters.
func (p *Page) TWith(key string, pairs ...any) string {
	if p.translate == nil {
		return key
	}
	data := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if name, ok := pairs[i].(string); ok {
			data[name] = pairs[i+1]
		}
	}
	return p.translate(key, data)
}

type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

type NavLink struct {
	Href  string
	Title string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Metric struct {
	Label string
	Value int
	Color string
	// DashOffset is the stroke-dashoffset of a gauge circle of radius 40.
	DashOffset float64
}

type Testimonial struct {
	Name     string
	Position string
	Comment  string
	Initials string
	Stars    []bool
}

type FAQItem struct {
	ID       string
	Question string
	Answer   string
}

type Urgency struct {
	Days           string
	Hours          string
	Minutes        string
	Seconds        string
	TotalSpots     int
	RemainingSpots int
	// FilledPercent is the share of spots already taken.
	FilledPercent int
}
