package storage

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/Juan171109/automation-task/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BasketRecord is the persisted shape of one basket line
type BasketRecord struct {
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// MarshalBasket encodes records as a JSON array; nil encodes as "[]"
func MarshalBasket(records []BasketRecord) ([]byte, error) {
	if records == nil {
		records = []BasketRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode basket: %w", err)
	}
	return data, nil
}

// UnmarshalBasket decodes a persisted basket. Anything that is not a JSON
// array of records is reported as ErrCorruptState.
func UnmarshalBasket(data []byte) ([]BasketRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrCorruptState)
	}
	var records []BasketRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if records == nil {
		// "null" is a valid encoding of an empty basket
		records = []BasketRecord{}
	}
	return records, nil
}

// MarshalSession encodes a user session
func MarshalSession(s *models.UserSession) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return data, nil
}

// UnmarshalSession decodes a user session, reporting ErrCorruptState on failure
func UnmarshalSession(data []byte) (*models.UserSession, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrCorruptState)
	}
	var s models.UserSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &s, nil
}
