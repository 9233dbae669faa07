package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/clusterlab/clustercheck/internal/contract"
	"github.com/clusterlab/clustercheck/schema"
)

// WriteMetricInfos outputs the metric definition listing, dispatching based
// on the output format configured. Parquet is not offered here; definitions
// are static documentation, not run data.
func WriteMetricInfos(infos []schema.MetricInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, infos)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricInfoCSV(w, infos)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricInfoTable(w, infos, cfg)
		}, "table")
	}
}

// writeMetricInfoCSV writes one row per metric definition.
func writeMetricInfoCSV(w io.Writer, infos []schema.MetricInfo) error {
	header := []string{"metric", "kind", "range", "tags", "description"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, info := range infos {
			row := []string{
				string(info.Name),
				info.Kind,
				info.Range,
				formatTags(info.Tags),
				info.Description,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeMetricInfoTable generates and writes the human-readable listing.
func writeMetricInfoTable(w io.Writer, infos []schema.MetricInfo, cfg *contract.Config) error {
	fmt.Fprintf(w, "Registered clustering metrics (%d)\n\n", len(infos))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Kind", "Range", "Tags", "Description"})

	var data [][]string
	maxDesc := getTerminalWidth(cfg) / 2
	for _, info := range infos {
		desc := info.Description
		if len(desc) > maxDesc && maxDesc > 3 {
			desc = desc[:maxDesc-3] + "..."
		}
		data = append(data, []string{
			string(info.Name),
			info.Kind,
			info.Range,
			formatTags(info.Tags),
			desc,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
