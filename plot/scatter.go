// Package plot renders engine snapshots as scatter charts, one series per
// cluster plus a centroid series. It is a consumer of snapshots only; the
// engine never depends on it.
package plot

import (
	"fmt"
	"io"

	"github.com/AvraamMavridis/randomcolor"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/clusterstep"
)

// Options control chart appearance.
type Options struct {
	// Title overrides the default chart title.
	Title string
	// CentroidColor is the color of the centroid series. Default black.
	CentroidColor string
}

// Scatter builds a scatter chart of one snapshot. Points are grouped into
// one series per cluster (unlabeled points form their own series), colored
// randomly; centroids get a single highlighted series. Centroids are
// denormalized back into raw coordinate space using the dataset's feature
// maxima so they land among the points they represent.
func Scatter(snap clusterstep.Snapshot, optFns ...func(*Options)) *charts.Scatter {
	o := Options{
		Title:         fmt.Sprintf("k-means - iteration %d (%s)", snap.Iteration, snap.Status),
		CentroidColor: "black",
	}
	for _, fn := range optFns {
		fn(&o)
	}

	es := charts.NewScatter()
	es.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithLegendOpts(
			opts.Legend{
				Show: opts.Bool(true),
				Top:  "5%",
			},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Title: "k-means_scatter",
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{a}: {c}",
		}),
	)

	var maxStudy, maxSleep float64
	grouped := make(map[int][]opts.ScatterData)
	for _, p := range snap.Points {
		if p.StudyHours > maxStudy {
			maxStudy = p.StudyHours
		}
		if p.SleepHours > maxSleep {
			maxSleep = p.SleepHours
		}
		grouped[p.Cluster] = append(grouped[p.Cluster], opts.ScatterData{
			Value: []float64{p.StudyHours, p.SleepHours},
		})
	}

	if data, ok := grouped[clusterstep.Unassigned]; ok {
		es.AddSeries("Unassigned", data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "grey"}))
	}

	for _, c := range snap.Centroids {
		data, ok := grouped[c.Cluster]
		if !ok {
			continue
		}
		name := fmt.Sprintf("Cluster %d", c.Cluster)
		es.AddSeries(name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: randomcolor.GetRandomColorInHex()}))
	}

	var dataCentroids []opts.ScatterData
	for _, c := range snap.Centroids {
		dataCentroids = append(dataCentroids, opts.ScatterData{
			Value: []float64{c.X * maxStudy, c.Y * maxSleep},
		})
	}
	if len(dataCentroids) > 0 {
		es.AddSeries("Centroids", dataCentroids,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: o.CentroidColor}))
	}

	return es
}

// Render writes the chart for one snapshot as a standalone HTML page.
func Render(w io.Writer, snap clusterstep.Snapshot, optFns ...func(*Options)) error {
	return Scatter(snap, optFns...).Render(w)
}
