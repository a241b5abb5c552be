package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/input"
	"signalsite/internal/ports/output"
	"signalsite/pkg/countdown"
)

var _ input.PageUseCase = (*PageService)(nil)

// gaugeCircumference is 2πr for the r=40 gauge circle drawn by the template.
var gaugeCircumference = 2 * math.Pi * 40

// PageService assembles the landing page view model for a request locale.
type PageService struct {
	content    *entities.Content
	translator output.T
	deadline   time.Time
	now        func() time.Time
}

// NewPageService creates a PageService whose countdown ends at deadline.
func NewPageService(content *entities.Content, translator output.T, deadline time.Time) *PageService {
	return &PageService{
		content:    content,
		translator: translator,
		deadline:   deadline,
		now:        time.Now,
	}
}

func (s *PageService) Build(ctx context.Context, form entities.FormState) *entities.Page {
	locale := domain.LocaleFromContext(ctx)
	t := func(key string) string { return s.translator.T(locale, key, nil) }
	now := s.now()

	if form.Input.PhonePrefix == "" {
		form.Input.PhonePrefix = domain.DefaultPhonePrefix
	}

	page := &entities.Page{
		Locale:        locale.String(),
		PhonePrefixes: s.content.PhonePrefixes,
		Form:          form,
		Year:          now.Year(),
	}
	page.SetTranslator(func(key string, data map[string]any) string {
		return s.translator.T(locale, key, data)
	})

	for _, l := range domain.Locales() {
		page.Languages = append(page.Languages, entities.LanguageOption{
			Tag:    l.String(),
			Label:  t("nav.lang_" + l.String()),
			Active: l == locale,
		})
	}

	for _, n := range s.content.Nav {
		page.Nav = append(page.Nav, entities.NavLink{Href: "#" + n.Anchor, Title: t(n.Key)})
	}

	for _, f := range s.content.Features {
		page.Features = append(page.Features, entities.Feature{
			Icon:        f.Icon,
			Title:       t("features." + f.Key + ".title"),
			Description: t("features." + f.Key + ".description"),
		})
	}

	for _, m := range s.content.Metrics {
		metric := entities.Metric{Label: t(m.Key), Value: m.Value, Color: m.Color}
		switch m.Shape {
		case entities.ShapeGauge:
			metric.DashOffset = gaugeDashOffset(m.Value)
			page.Gauges = append(page.Gauges, metric)
		default:
			page.Bars = append(page.Bars, metric)
		}
	}

	for _, ts := range s.content.Testimonials {
		prefix := fmt.Sprintf("testimonials.%d.", ts.ID)
		name := t(prefix + "name")
		stars := make([]bool, 5)
		for i := range stars {
			stars[i] = i < ts.Rating
		}
		page.Testimonials = append(page.Testimonials, entities.Testimonial{
			Name:     name,
			Position: t(prefix + "position"),
			Comment:  t(prefix + "comment"),
			Initials: initials(name),
			Stars:    stars,
		})
	}

	for _, id := range s.content.FAQ {
		page.FAQ = append(page.FAQ, entities.FAQItem{
			ID:       id,
			Question: t("faq.questions." + id + ".question"),
			Answer:   t("faq.questions." + id + ".answer"),
		})
	}

	left := countdown.Remaining(now, s.deadline)
	u := s.content.Urgency
	page.Urgency = entities.Urgency{
		Days:           countdown.Pad(left.Days),
		Hours:          countdown.Pad(left.Hours),
		Minutes:        countdown.Pad(left.Minutes),
		Seconds:        countdown.Pad(left.Seconds),
		TotalSpots:     u.TotalSpots,
		RemainingSpots: u.RemainingSpots,
	}
	if u.TotalSpots > 0 {
		page.Urgency.FilledPercent = (u.TotalSpots - u.RemainingSpots) * 100 / u.TotalSpots
	}

	return page
}

func gaugeDashOffset(percent int) float64 {
	return math.Round(gaugeCircumference*(1-float64(percent)/100)*100) / 100
}

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
