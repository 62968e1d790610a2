// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a JSONB column holding a list of strings.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// IDList is a JSONB column holding an ordered list of record IDs.
// Set-style membership is enforced by the code that mutates it, not by the
// column itself.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uint{})
	}
	return json.Marshal(l)
}

// Scan unmarshals a JSONB column into the list.
func (l *IDList) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("IDList: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, l)
}

// Contains reports whether id is present in the list.
func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id if it is not already present and reports whether the list
// changed.
func (l *IDList) Add(id uint) bool {
	if l.Contains(id) {
		return false
	}
	*l = append(*l, id)
	return true
}

// Remove deletes id preserving order and reports whether the list changed.
func (l *IDList) Remove(id uint) bool {
	for i, v := range *l {
		if v == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// SkillEntry records a user's self-assessed level for one sport.
type SkillEntry struct {
	Sport string `json:"sport"`
	Level string `json:"level"`
}

// SkillEntries is the JSONB column for a user's skill levels.
type SkillEntries []SkillEntry

func (s SkillEntries) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]SkillEntry{})
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the struct.
func (s *SkillEntries) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("SkillEntries: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}
