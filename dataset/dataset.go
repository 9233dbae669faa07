// Package dataset provides the fixed labeled dataset used by end-to-end
// metric checks: Fisher's iris measurements with integer class labels,
// embedded at build time.
package dataset

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//go:embed iris.csv
var irisCSV string

// Labeled is a feature matrix with one integer class label per row.
type Labeled struct {
	Name     string
	Features *mat.Dense
	Labels   []int
}

// Classes returns the number of distinct class labels.
func (d *Labeled) Classes() int {
	distinct := make(map[int]struct{})
	for _, l := range d.Labels {
		distinct[l] = struct{}{}
	}
	return len(distinct)
}

// Iris parses the embedded iris data: 150 samples, 4 features, 3 classes of
// 50 samples each.
func Iris() (*Labeled, error) {
	lines := strings.Split(strings.TrimSpace(irisCSV), "\n")
	n := len(lines)
	const features = 4

	data := make([]float64, 0, n*features)
	labels := make([]int, 0, n)
	for i, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != features+1 {
			return nil, fmt.Errorf("dataset: iris row %d has %d fields, want %d", i+1, len(fields), features+1)
		}
		for _, f := range fields[:features] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: iris row %d: %w", i+1, err)
			}
			data = append(data, v)
		}
		label, err := strconv.Atoi(fields[features])
		if err != nil {
			return nil, fmt.Errorf("dataset: iris row %d label: %w", i+1, err)
		}
		labels = append(labels, label)
	}

	return &Labeled{
		Name:     "iris",
		Features: mat.NewDense(n, features, data),
		Labels:   labels,
	}, nil
}
