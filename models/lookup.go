package models

import "time"

// LookupType identifies which categorical load field a lookup value belongs
// to. The set of types is closed; unknown type strings are rejected at the
// adapter boundary, not inside the store.
type LookupType string

const (
	LookupTruck       LookupType = "truck"
	LookupFarm        LookupType = "farm"
	LookupField       LookupType = "field"
	LookupVariety     LookupType = "variety"
	LookupDriver      LookupType = "driver"
	LookupDestination LookupType = "destination"
	LookupAgreement   LookupType = "agreement"
)

// LookupTypes returns all known lookup types in their canonical order.
func LookupTypes() []LookupType {
	return []LookupType{
		LookupTruck,
		LookupFarm,
		LookupField,
		LookupVariety,
		LookupDriver,
		LookupDestination,
		LookupAgreement,
	}
}

// LookupValue is one selectable option for a categorical load field.
// (Type, Value) pairs are unique; inserting a duplicate is a no-op.
type LookupValue struct {
	ID        string     `json:"id"`
	Type      LookupType `json:"type"`
	Value     string     `json:"value"`
	CreatedAt time.Time  `json:"created_at"`
}
