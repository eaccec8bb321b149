//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/e-gun/FeedTopics/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"io"
)

//
// GRAPHING
//

// WriteTopicChart - one bar chart per topic showing the weights of its top n terms
func WriteTopicChart(w io.Writer, name string, tm *TopicModel, n int) error {
	p := components.NewPage()
	p.PageTitle = fmt.Sprintf("%s: %d topics", name, tm.K)

	for i, tt := range TopTerms(tm, n) {
		p.AddCharts(topicbar(name, i+1, tt))
	}
	return p.Render(w)
}

func topicbar(name string, topic int, tt []TopicTerm) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  vv.DEFAULTCHRTWIDTH,
			Height: vv.DEFAULTCHRTHEIGHT,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Topic %d", topic),
			Subtitle: name,
		}),
	)

	xx := make([]string, len(tt))
	yy := make([]opts.BarData, len(tt))
	for i := range tt {
		xx[i] = tt[i].W
		yy[i] = opts.BarData{Value: tt[i].V}
	}

	bar.SetXAxis(xx).AddSeries("weight", yy)
	return bar
}
