package census

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// maxChartSeries caps the number of lines drawn; later runs are omitted.
const maxChartSeries = 16

// WriteChart renders the population curves of results as a PNG.
func WriteChart(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}
	top := 1
	var series []chart.Series
	for i, r := range results {
		if i == maxChartSeries {
			break
		}
		if len(r.Population) < 2 {
			return fmt.Errorf("census: seed %d has fewer than two samples", r.Seed)
		}
		xs := make([]float64, len(r.Population))
		ys := make([]float64, len(r.Population))
		for gen, pop := range r.Population {
			xs[gen] = float64(gen)
			ys[gen] = float64(pop)
			top = max(top, pop)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("seed %d", r.Seed),
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Series: series,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("census: render chart: %w", err)
	}
	return nil
}
