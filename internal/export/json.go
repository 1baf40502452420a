package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/algodyssey/internal/trace"
)

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Input     trace.Sequence     `json:"input"`
	Target    int                `json:"target"`
	Steps     int                `json:"steps"`
	Trace     trace.Trace        `json:"trace"`
	Result    trace.Result       `json:"result"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newExportData(run *trace.Run) ExportData {
	return ExportData{
		Algorithm: run.Algorithm,
		Input:     run.Input,
		Target:    run.Target,
		Steps:     len(run.Trace),
		Trace:     run.Trace,
		Result:    run.Result,
		Metrics:   run.Metrics,
	}
}

// WriteJSON encodes run as indented JSON. Run IDs are left out so the same
// input always exports identically.
func WriteJSON(w io.Writer, run *trace.Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(run))
}

func ExportJSON(path string, run *trace.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, run)
}
