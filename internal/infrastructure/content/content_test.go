package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signalsite/internal/domain/entities"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Nav, 5)
	assert.Len(t, c.Features, 4)
	assert.Len(t, c.Testimonials, 5)
	assert.Len(t, c.FAQ, 6)
	assert.Equal(t, "+1", c.PhonePrefixes[0].Code)
	assert.Contains(t, c.PrefixCodes(), "+34")
	assert.Equal(t, 2000, c.Urgency.TotalSpots)
	assert.Equal(t, 262, c.Urgency.RemainingSpots)
	assert.Equal(t, 7*24*time.Hour, c.Urgency.Window)

	var bars, gauges int
	for _, m := range c.Metrics {
		switch m.Shape {
		case entities.ShapeBar:
			bars++
		case entities.ShapeGauge:
			gauges++
		}
	}
	assert.Equal(t, 4, bars)
	assert.Equal(t, 3, gauges)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"no prefixes": `
urgency: {total_spots: 10, remaining_spots: 1}
`,
		"missing default prefix": `
phone_prefixes: [{code: "+44", label: UK}]
urgency: {total_spots: 10, remaining_spots: 1}
`,
		"metric out of range": `
phone_prefixes: [{code: "+1", label: US}]
metrics: [{key: m, value: 101, shape: bar}]
urgency: {total_spots: 10, remaining_spots: 1}
`,
		"unknown shape": `
phone_prefixes: [{code: "+1", label: US}]
metrics: [{key: m, value: 10, shape: pie}]
urgency: {total_spots: 10, remaining_spots: 1}
`,
		"remaining above total": `
phone_prefixes: [{code: "+1", label: US}]
urgency: {total_spots: 10, remaining_spots: 11}
`,
		"bad yaml": `phone_prefixes: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
