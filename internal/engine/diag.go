package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// cycleWarning is the payload of the legacy cycle-size diagnostic line.
// Downstream tooling greps for the CYCLE_SIZE_WARNING: prefix, so the shape
// and key order must not change.
type cycleWarning struct {
	Parser   string `json:"parser"`
	Detected int    `json:"detected"`
	Expected int    `json:"expected"`
	Status   string `json:"status"`
}

// WriteDetectionLine emits the cycle-size diagnostic for a detection result
// in the legacy line format:
//
//	CYCLE_SIZE_WARNING:{"parser":"products","detected":8,"expected":8,"status":"OK"}
func WriteDetectionLine(w io.Writer, schemaName string, det Detection) error {
	payload, err := json.Marshal(cycleWarning{
		Parser:   schemaName,
		Detected: det.Size,
		Expected: det.Expected,
		Status:   string(det.Status),
	})
	if err != nil {
		return fmt.Errorf("encoding cycle warning: %w", err)
	}
	_, err = fmt.Fprintf(w, "CYCLE_SIZE_WARNING:%s\n", payload)
	return err
}
