package versions

import (
	"encoding/json"
	"fmt"
)

func marshalJSONB(value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return payload, nil
}

func unmarshalJSONB(payload []byte, dest any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
