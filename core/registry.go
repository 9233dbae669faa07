// Package core implements the metric invariance checker: typed registries of
// clustering metrics, the property checks applied to them, and the execution
// entrypoints behind the CLI commands.
package core

import (
	"github.com/clusterlab/clustercheck/cluster"
	"github.com/clusterlab/clustercheck/schema"
)

// supervisedRegistry maps each supervised metric identifier to its
// implementation. Built once at process start; callers must treat the
// returned maps as read-only.
var supervisedRegistry = map[schema.MetricID]cluster.SupervisedMetric{
	schema.AdjustedMutualInfo:   cluster.AdjustedMutualInfo,
	schema.AdjustedRand:         cluster.AdjustedRand,
	schema.Completeness:         cluster.Completeness,
	schema.FowlkesMallows:       cluster.FowlkesMallows,
	schema.Homogeneity:          cluster.Homogeneity,
	schema.MutualInfo:           cluster.MutualInfo,
	schema.NormalizedMutualInfo: cluster.NormalizedMutualInfo,
	schema.VMeasure:             cluster.VMeasure,
}

// unsupervisedRegistry maps each unsupervised metric identifier to its
// implementation.
var unsupervisedRegistry = map[schema.MetricID]cluster.UnsupervisedMetric{
	schema.CalinskiHarabasz: cluster.CalinskiHarabasz,
	schema.Silhouette:       cluster.Silhouette,
}

// SupervisedRegistry returns the process-wide supervised metric registry.
func SupervisedRegistry() map[schema.MetricID]cluster.SupervisedMetric {
	return supervisedRegistry
}

// UnsupervisedRegistry returns the process-wide unsupervised metric registry.
func UnsupervisedRegistry() map[schema.MetricID]cluster.UnsupervisedMetric {
	return unsupervisedRegistry
}
