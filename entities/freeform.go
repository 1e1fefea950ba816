package entities

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Freeform holds an arbitrary JSON value verbatim (a string, a number, an
// array or an object). It is a datatypes.JSON column that also accepts
// plain text rows written by other clients.
type Freeform datatypes.JSON

var jsonNull = []byte("null")

func (f Freeform) IsZero() bool {
	return len(f) == 0 || bytes.Equal(f, jsonNull)
}

func (f Freeform) MarshalJSON() ([]byte, error) {
	return datatypes.JSON(f).MarshalJSON()
}

func (f *Freeform) UnmarshalJSON(data []byte) error {
	if f == nil {
		return fmt.Errorf("entities.Freeform: UnmarshalJSON on nil pointer")
	}
	return (*datatypes.JSON)(f).UnmarshalJSON(data)
}

func (f Freeform) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return datatypes.JSON(f).Value()
}

func (f *Freeform) Scan(src any) error {
	if src == nil {
		*f = nil
		return nil
	}

	var j datatypes.JSON
	if err := j.Scan(src); err == nil {
		*f = Freeform(j)
		return nil
	}

	// plain text rows, and numbers the column affinity already converted
	var value any
	switch v := src.(type) {
	case string:
		value = v
	case []byte:
		value = string(v)
	case int64, float64:
		value = v
	default:
		return fmt.Errorf("entities.Freeform: cannot scan %T", src)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	*f = encoded
	return nil
}

func (Freeform) GormDataType() string {
	return datatypes.JSON{}.GormDataType()
}

func (Freeform) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSON{}.GormDBDataType(db, field)
}
