package enum

import (
	"encoding/json"
	"strings"
)

// ExportAction is the output channel selected for a receipt
type ExportAction string

const (
	ExportDocument ExportAction = "document"
	ExportEmail    ExportAction = "email"
	ExportPrint    ExportAction = "print"
	ExportShare    ExportAction = "share"
)

// ParseExportAction normalizes user input. "pdf" is accepted as an alias for document.
func ParseExportAction(s string) (ExportAction, bool) {
	a := ExportAction(strings.ToLower(strings.TrimSpace(s)))
	if a == "pdf" {
		a = ExportDocument
	}
	return a, a.IsValid()
}

// IsValid reports whether the action is one of the recognized channels
func (a ExportAction) IsValid() bool {
	switch a {
	case ExportDocument, ExportEmail, ExportPrint, ExportShare:
		return true
	}
	return false
}

func (a ExportAction) String() string {
	return string(a)
}

func (a *ExportAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, _ := ParseExportAction(str)
	*a = parsed
	return nil
}
