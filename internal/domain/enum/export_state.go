package enum

import "encoding/json"

// ExportState is the lifecycle state of an export dispatcher
type ExportState int

const (
	ExportStateIdle        ExportState = 0
	ExportStateDispatching ExportState = 1
	ExportStateCompleted   ExportState = 2
	ExportStateFailed      ExportState = 3
)

var exportStateNames = [...]string{"idle", "dispatching", "completed", "failed"}

func (s ExportState) String() string {
	if s < 0 || int(s) >= len(exportStateNames) {
		return "unknown"
	}
	return exportStateNames[s]
}

func (s ExportState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ExportResult tells callers what a finished dispatch actually did
type ExportResult int

const (
	// ExportResultGenerated means a document was produced
	ExportResultGenerated ExportResult = 0
	// ExportResultNotImplemented means the action is recognized but has no handler yet
	ExportResultNotImplemented ExportResult = 1
	// ExportResultFailed means the document generator returned an error
	ExportResultFailed ExportResult = 2
)

var exportResultNames = [...]string{"generated", "not_implemented", "failed"}

func (r ExportResult) String() string {
	if r < 0 || int(r) >= len(exportResultNames) {
		return "unknown"
	}
	return exportResultNames[r]
}

func (r ExportResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
