// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// ErrEmptyHistory is returned when there is nothing to chart.
var ErrEmptyHistory = errors.New("render: empty history")

// lineChart builds one line chart over iterations 1..len(values).
func lineChart(title, subtitle, series string, values []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(false),
	)

	xs := make([]int, len(values))
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		xs[i] = i + 1
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(xs).AddSeries(series, data)

	return line
}

// HistoryHTML writes an HTML page with the compliance history and, when
// volumes is non-empty, the achieved volume fraction per iteration.
func HistoryHTML(w io.Writer, history, volumes []float64) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}
	page := components.NewPage()
	page.SetPageTitle("BESO history")
	page.AddCharts(lineChart("Compliance", "objective per iteration", "compliance", history))
	if len(volumes) > 0 {
		page.AddCharts(lineChart("Volume", "achieved volume fraction", "volume", volumes))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}

	return nil
}
