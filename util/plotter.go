package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotHourlyProfile renders an HTML line chart of predicted riders by
// hour for one station/line/day, written to w. Hours arrive in service
// order (start..23 then the after-midnight tail), matching the grid the
// prediction service produced.
func PlotHourlyProfile(w io.Writer, station, dayType string, hourLabels []string, riders []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s - riders by hour", station),
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s - estimated riders by hour (%s)", station, dayType),
			Subtitle: "Hours outside the service window are omitted",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Predicted riders"}),
	)

	points := make([]opts.LineData, len(riders))
	for i, r := range riders {
		points[i] = opts.LineData{Value: r}
	}

	line.SetXAxis(hourLabels).
		AddSeries("predicted riders", points,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render hourly profile chart: %w", err)
	}
	return nil
}
