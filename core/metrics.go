package core

import (
	"context"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/internal/outwriter"
	"github.com/clusterlab/clustercheck/schema"
)

// metricDescriptions documents each registered metric for the metrics
// command. Purely informational; no metric evaluation is performed.
var metricDescriptions = map[schema.MetricID]schema.MetricInfo{
	schema.AdjustedMutualInfo: {
		Kind: "supervised", Range: "[-1, 1]",
		Description: "Mutual information adjusted for chance under the hypergeometric null model",
	},
	schema.AdjustedRand: {
		Kind: "supervised", Range: "[-1, 1]",
		Description: "Rand index adjusted for chance; pair-counting agreement between partitions",
	},
	schema.Completeness: {
		Kind: "supervised", Range: "[0, 1]",
		Description: "Degree to which all members of a true class share a predicted cluster",
	},
	schema.FowlkesMallows: {
		Kind: "supervised", Range: "[0, 1]",
		Description: "Geometric mean of pairwise precision and recall",
	},
	schema.Homogeneity: {
		Kind: "supervised", Range: "[0, 1]",
		Description: "Degree to which each predicted cluster contains a single true class",
	},
	schema.MutualInfo: {
		Kind: "supervised", Range: "[0, +inf)",
		Description: "Mutual information between the two labelings, in nats",
	},
	schema.NormalizedMutualInfo: {
		Kind: "supervised", Range: "[0, 1]",
		Description: "Mutual information normalized by the geometric mean of marginal entropies",
	},
	schema.VMeasure: {
		Kind: "supervised", Range: "[0, 1]",
		Description: "Harmonic mean of homogeneity and completeness",
	},
	schema.CalinskiHarabasz: {
		Kind: "unsupervised", Range: "[0, +inf)",
		Description: "Ratio of between-cluster to within-cluster dispersion",
	},
	schema.Silhouette: {
		Kind: "unsupervised", Range: "[-1, 1]",
		Description: "Mean silhouette coefficient over all samples",
	},
}

// ExecuteMetricsInfo runs the metrics command: list every registered metric
// with its kind, range, property tags and description.
func ExecuteMetricsInfo(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	infos := MetricInfos()
	ow := outwriter.NewOutWriter()
	return ow.WriteMetricsInfo(infos, cfg)
}

// MetricInfos assembles the display model for every registered metric,
// supervised first, each group in name order.
func MetricInfos() []schema.MetricInfo {
	var infos []schema.MetricInfo
	appendInfo := func(id schema.MetricID) {
		info := metricDescriptions[id]
		info.Name = id
		info.Tags = schema.TagsFor(id)
		infos = append(infos, info)
	}
	for _, id := range schema.AllSupervisedMetrics {
		appendInfo(id)
	}
	for _, id := range schema.AllUnsupervisedMetrics {
		appendInfo(id)
	}
	return infos
}
