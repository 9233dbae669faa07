package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/internal/outwriter"
	"github.com/clusterlab/clustercheck/schema"
)

// ExecuteScore runs the score command: evaluate every supervised metric on
// the configured label pair and print the scores ranked descending.
func ExecuteScore(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(cfg.LabelsTrue) == 0 {
		return fmt.Errorf("score requires --labels-true and --labels-pred")
	}
	start := time.Now()

	report, err := BuildScoreReport(cfg.LabelsTrue, cfg.LabelsPred, cfg.Limit)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteScores(report, cfg, time.Since(start))
}

// BuildScoreReport evaluates every registered supervised metric on a label
// pair and ranks the scores descending, keeping the top 'limit' entries.
func BuildScoreReport(labelsTrue, labelsPred []int, limit int) (*schema.ScoreReport, error) {
	scores := make([]schema.MetricScore, 0, len(supervisedRegistry))
	for _, id := range sortedMetricIDs(supervisedRegistry) {
		score, err := supervisedRegistry[id](labelsTrue, labelsPred)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		scores = append(scores, schema.MetricScore{
			Metric: id,
			Score:  score,
			Tags:   schema.TagsFor(id),
		})
	}
	rankScores(scores)
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	return &schema.ScoreReport{
		LabelsTrue: labelsTrue,
		LabelsPred: labelsPred,
		Scores:     scores,
	}, nil
}

// rankScores sorts metric scores in descending order, breaking ties by
// metric name for stable output.
func rankScores(scores []schema.MetricScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Metric < scores[j].Metric
	})
}
