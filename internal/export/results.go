// Package export writes comparison results and sort animations to files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/sortlab/internal/compare"
)

var csvHeader = []string{"rank", "algorithm", "time_ms", "comparisons", "swaps", "efficiency", "badge"}

// WriteCSV writes a header and one row per result, in the given order.
func WriteCSV(w io.Writer, results []compare.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Name,
			strconv.FormatFloat(r.Millis, 'f', 6, 64),
			strconv.Itoa(r.Counts.Comparisons),
			strconv.Itoa(r.Counts.Swaps),
			strconv.Itoa(r.Efficiency),
			r.Badge.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []compare.Result) error {
	if results == nil {
		results = []compare.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
