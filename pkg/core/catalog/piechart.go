package catalog

import (
	"fmt"
	"math"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// Palette cycles over the slices of the clicks-by-category chart
var Palette = []string{"#2563eb", "#16a34a", "#f59e0b", "#ec4899", "#8b5cf6", "#0ea5e9"}

const (
	pieWidth  = 360.0
	pieHeight = 260.0
	pieRadius = 90.0
)

// PieSlice is one category of the chart. Path is empty for zero-click
// categories; Full marks a single category holding every click.
type PieSlice struct {
	Name       string
	Clicks     int64
	Label      string
	Color      string
	Path       string
	Full       bool
	LabelX     float64
	LabelY     float64
	LabelAlign string
}

// Pie is the SVG geometry of the clicks-by-category chart
type Pie struct {
	Width  float64
	Height float64
	CX     float64
	CY     float64
	Radius float64
	Total  int64
	Slices []PieSlice
}

// SliceLabel formats a slice caption, e.g. "Audio (8)".
func SliceLabel(name string, clicks int64) string {
	return fmt.Sprintf("%s (%d)", name, clicks)
}

// PieChart lays out one slice per category, sized by clicks, starting at
// twelve o'clock and going clockwise.
func PieChart(stats []domain.CategoryStats) Pie {
	pie := Pie{
		Width:  pieWidth,
		Height: pieHeight,
		CX:     pieWidth / 2,
		CY:     pieHeight / 2,
		Radius: pieRadius,
		Slices: make([]PieSlice, 0, len(stats)),
	}
	for _, s := range stats {
		pie.Total += s.Clicks
	}

	angle := -math.Pi / 2
	for i, s := range stats {
		slice := PieSlice{
			Name:   s.Name,
			Clicks: s.Clicks,
			Label:  SliceLabel(s.Name, s.Clicks),
			Color:  Palette[i%len(Palette)],
		}
		if pie.Total > 0 && s.Clicks > 0 {
			sweep := 2 * math.Pi * float64(s.Clicks) / float64(pie.Total)
			if s.Clicks == pie.Total {
				slice.Full = true
			} else {
				slice.Path = arcPath(pie.CX, pie.CY, pie.Radius, angle, angle+sweep)
			}
			mid := angle + sweep/2
			slice.LabelX = round2(pie.CX + (pie.Radius+14)*math.Cos(mid))
			slice.LabelY = round2(pie.CY + (pie.Radius+14)*math.Sin(mid))
			slice.LabelAlign = "start"
			if math.Cos(mid) < 0 {
				slice.LabelAlign = "end"
			}
			angle += sweep
		}
		pie.Slices = append(pie.Slices, slice)
	}
	return pie
}

func arcPath(cx, cy, r, from, to float64) string {
	x1, y1 := cx+r*math.Cos(from), cy+r*math.Sin(from)
	x2, y2 := cx+r*math.Cos(to), cy+r*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
