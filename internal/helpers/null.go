package helpers

import (
	"encoding/json"
	"time"
)

// NullString distinguishes "field absent" from "field set to null" in PATCH
// bodies.
type NullString struct {
	Set   bool
	Value *string
}

func (ns *NullString) String() string {
	if ns.Value != nil {
		return *ns.Value
	}
	return ""
}

func (ns *NullString) UnmarshalJSON(data []byte) error {
	ns.Set = true
	if string(data) == "null" {
		ns.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = &s
	return nil
}

// NullTime mirrors NullString for nullable timestamps such as a job's
// end date.
type NullTime struct {
	Set   bool
	Value *time.Time
}

func (nt *NullTime) UnmarshalJSON(data []byte) error {
	nt.Set = true
	if string(data) == "null" {
		nt.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Value = &t
	return nil
}
