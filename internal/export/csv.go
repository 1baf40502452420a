package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algodyssey/internal/trace"
)

var csvHeader = []string{
	"step", "kind", "lo", "hi", "index", "outcome",
	"sum", "best", "best_lo", "best_hi", "reset", "comparisons", "values",
}

// WriteCSV writes one row per step of tr.
func WriteCSV(w io.Writer, tr trace.Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, s := range tr {
		values := make([]string, len(s.Values))
		for j, v := range s.Values {
			values[j] = strconv.Itoa(v)
		}
		row := []string{
			strconv.Itoa(i),
			string(s.Kind),
			strconv.Itoa(s.Lo),
			strconv.Itoa(s.Hi),
			strconv.Itoa(s.Index),
			string(s.Outcome),
			strconv.Itoa(s.Sum),
			strconv.Itoa(s.Best),
			strconv.Itoa(s.BestLo),
			strconv.Itoa(s.BestHi),
			strconv.FormatBool(s.Reset),
			strconv.Itoa(s.Comparisons),
			strings.Join(values, " "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
