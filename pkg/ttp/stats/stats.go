// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats summarizes the travel-distance distribution of an
// enumeration run.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// HistogramBins is the number of buckets the distance range is split
// into for the text histogram.
const HistogramBins = 20

// Summary is the descriptive-statistics view of a distance collection.
type Summary struct {
	Count int

	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64

	Min, Max   float64
	Q1, Q2, Q3 float64
}

// Summarize computes the summary of a non-empty distance collection.
func Summarize(distances []int64) (Summary, error) {
	if len(distances) == 0 {
		return Summary{}, fmt.Errorf("stats: no distances to summarize")
	}

	data := toFloats(distances)
	summary := Summary{Count: len(distances)}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("stats: mean: %w", err)
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("stats: median: %w", err)
	}
	if summary.Variance, err = stats.PopulationVariance(data); err != nil {
		return Summary{}, fmt.Errorf("stats: variance: %w", err)
	}
	summary.StdDev = math.Sqrt(summary.Variance)

	if summary.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("stats: min: %w", err)
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("stats: max: %w", err)
	}

	quartiles, err := stats.Quartile(data)
	if err != nil {
		return Summary{}, fmt.Errorf("stats: quartiles: %w", err)
	}
	summary.Q1, summary.Q2, summary.Q3 = quartiles.Q1, quartiles.Q2, quartiles.Q3

	return summary, nil
}

// Histogram buckets the distances into HistogramBins equal-width bins
// across [min, max] and returns the per-bin counts together with the
// bin dividers. A degenerate collection where every distance is equal
// lands entirely in the first bin.
func Histogram(distances []int64) (counts []float64, dividers []float64) {
	data := toFloats(distances)
	sort.Float64s(data)

	min, max := data[0], data[len(data)-1]
	if max == min {
		max = min + 1
	}

	dividers = make([]float64, HistogramBins+1)
	width := (max - min) / HistogramBins
	for i := range dividers {
		dividers[i] = min + float64(i)*width
	}
	// Half-open bins: nudge the last divider so the maximum lands
	// inside the final bin instead of on its boundary.
	dividers[HistogramBins] = math.Nextafter(max, math.Inf(1))

	counts = stat.Histogram(nil, dividers, data, nil)
	return counts, dividers
}

// Report logs the summary and a text histogram of the distances.
func Report(distances []int64) error {
	summary, err := Summarize(distances)
	if err != nil {
		return err
	}

	logrus.Infof("Schedules:  %d", summary.Count)
	logrus.Infof("Mean:       %.2f", summary.Mean)
	logrus.Infof("Median:     %.2f", summary.Median)
	logrus.Infof("Variance:   %.2f", summary.Variance)
	logrus.Infof("Std Dev:    %.2f", summary.StdDev)
	logrus.Infof("Min-Max:    (%.0f, %.0f)", summary.Min, summary.Max)
	logrus.Infof("Quartiles:  (%.1f, %.1f, %.1f)", summary.Q1, summary.Q2, summary.Q3)

	counts, dividers := Histogram(distances)
	peak := 0.0
	for _, count := range counts {
		peak = math.Max(peak, count)
	}

	for bin, count := range counts {
		width := 0
		if peak > 0 {
			width = int(math.Round(count / peak * 40))
		}

		logrus.Infof(
			"%10.0f - %-10.0f %s %d",
			dividers[bin], dividers[bin+1],
			strings.Repeat("=", width), int(count),
		)
	}

	return nil
}

func toFloats(distances []int64) []float64 {
	data := make([]float64, len(distances))
	for i, distance := range distances {
		data[i] = float64(distance)
	}

	return data
}
