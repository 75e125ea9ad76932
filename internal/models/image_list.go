package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList stores an ordered list of image references as a JSON text column.
type ImageList []string

// Value encodes the list as JSON. A nil list is stored as "[]".
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode image list: %w", err)
	}
	return string(b), nil
}

// Scan decodes a JSON text column. Empty or NULL values become an empty list.
func (l *ImageList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into ImageList", src)
	}
	if len(raw) == 0 {
		*l = ImageList{}
		return nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return fmt.Errorf("failed to decode image list: %w", err)
	}
	*l = images
	return nil
}
