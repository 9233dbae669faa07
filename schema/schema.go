// Package schema has models and constants for all parts of clustercheck.
package schema

import "fmt"

// Violation records a single failed invariant comparison. It identifies the
// metric, the check that caught it, and the two values whose difference
// exceeded the tolerance.
type Violation struct {
	Check  CheckID  `json:"check"`
	Metric MetricID `json:"metric"`
	Detail string   `json:"detail"` // which comparison failed, in words
	Want   float64  `json:"want"`
	Got    float64  `json:"got"`
	Delta  float64  `json:"delta"`
}

// Error implements the error interface so a violation can propagate through
// error-returning call chains unchanged.
func (v Violation) Error() string {
	return fmt.Sprintf("%s/%s: %s: want %.9g, got %.9g (delta %.3g)",
		v.Check, v.Metric, v.Detail, v.Want, v.Got, v.Delta)
}

// CheckResult holds the outcome of an invariance-check run.
type CheckResult struct {
	Passed      bool        `json:"passed"`
	ChecksRun   []CheckID   `json:"checks_run"`
	Comparisons int         `json:"comparisons"` // total comparisons evaluated
	Tolerance   float64     `json:"tolerance"`
	Violations  []Violation `json:"violations"`
}

// MetricScore is one metric's evaluation of a label pair.
type MetricScore struct {
	Metric MetricID      `json:"metric"`
	Score  float64       `json:"score"`
	Tags   []PropertyTag `json:"tags,omitempty"`
}

// ScoreReport holds every supervised metric's score for one label pair,
// ranked by score descending.
type ScoreReport struct {
	LabelsTrue []int         `json:"labels_true"`
	LabelsPred []int         `json:"labels_pred"`
	Scores     []MetricScore `json:"scores"`
}

// MetricInfo describes one registered metric for display purposes.
type MetricInfo struct {
	Name        MetricID      `json:"name"`
	Kind        string        `json:"kind"` // supervised or unsupervised
	Range       string        `json:"range"`
	Description string        `json:"description"`
	Tags        []PropertyTag `json:"tags,omitempty"`
}
