package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// readPayload reads a sale payload from path, or stdin when path is "-"
func readPayload(path string, stdin io.Reader) (*entity.SalePayload, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return decodePayload(data)
}

// decodePayload accepts YAML or JSON. YAML is decoded generically and
// re-encoded as JSON so both formats share the JSON field rules.
func decodePayload(data []byte) (*entity.SalePayload, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parse payload: document is empty")
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("parse payload: expected a mapping, got %T", raw)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	var payload entity.SalePayload
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return &payload, nil
}
