// Package contract provides configuration, validation and shared utilities
// for the clustercheck CLI's internal architecture.
package contract
