package models

import "time"

// LoadStatus is the synchronization state of a locally stored load record.
type LoadStatus string

const (
	// LoadStatusPending marks a record that has not yet been delivered to
	// the remote system.
	LoadStatusPending LoadStatus = "pending"
	// LoadStatusSynced marks a record that was accepted by the remote
	// system. A record enters this state at most once and never leaves it.
	LoadStatusSynced LoadStatus = "synced"
)

// LoadForm carries the raw field values of one truck-load entry exactly as
// submitted by the entry form. Every categorical field has an "Other"
// companion that is non-empty only when the categorical field itself holds
// the sentinel value "other".
type LoadForm struct {
	// RegDate is the registration calendar date in YYYY-MM-DD format.
	RegDate string `json:"reg_date"`
	// RegTime is the registration time in HH:mm:ss format.
	RegTime string `json:"reg_time"`

	Truck            string `json:"truck"`
	OtherTruck       string `json:"othertruck"`
	Farm             string `json:"farm"`
	OtherFarm        string `json:"otherfarm"`
	Field            string `json:"field"`
	OtherField       string `json:"otherfield"`
	Variety          string `json:"variety"`
	OtherVariety     string `json:"othervariety"`
	Driver           string `json:"driver"`
	OtherDriver      string `json:"otherdriver"`
	Destination      string `json:"destination"`
	OtherDestination string `json:"otherdestination"`
	Note             string `json:"dnote"`
	Agreement        string `json:"agreement"`
	OtherAgreement   string `json:"otheragreement"`
}

// LoadRecord is one persisted truck-load event. The ID is generated locally
// when the record is created and is never reused.
type LoadRecord struct {
	ID string `json:"id"`

	LoadForm

	Status LoadStatus `json:"status"`
	// SyncAttempts counts failed delivery attempts for this record. It is
	// consulted by the sync policy and reset never.
	SyncAttempts int       `json:"sync_attempts"`
	CreatedAt    time.Time `json:"created_at"`
	// SyncedAt is set exactly once, on the pending -> synced transition.
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// LoadStats aggregates record counts over the local load table.
type LoadStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Synced  int `json:"synced"`
}
