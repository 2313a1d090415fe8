// types.go - Request/Response-Typen der Introspection-API
// Enthaelt: StatusError, VersionResponse, Families-/Kinds-/Probe-Typen
package api

import (
	"fmt"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/probe"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the godaal server logs for details"
	}
}

// VersionResponse ist die Antwort von /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Backend string `json:"backend,omitempty"`
	Native  string `json:"native,omitempty"`
}

// FamiliesResponse listet alle registrierten Identifier-Familien.
type FamiliesResponse struct {
	Families []*daal.Family `json:"families"`
}

// KindsResponse listet alle registrierten Kinds.
type KindsResponse struct {
	Kinds []daal.KindInfo `json:"kinds"`
}

// ProbeRequest waehlt die zu konstruierenden Kinds.
// Leere Kinds bedeutet alle registrierten, leere Precision alle unterstuetzten.
type ProbeRequest struct {
	Kinds     []string `json:"kinds,omitempty"`
	Precision string   `json:"precision,omitempty"`
	Parallel  int      `json:"parallel,omitempty"`
}

// ProbeResponse enthaelt ein Outcome pro Konstruktion.
type ProbeResponse struct {
	Backend  string          `json:"backend"`
	Outcomes []probe.Outcome `json:"outcomes"`
	Failed   int             `json:"failed"`
}
