package model

// CandidateStatusPending is the status every candidate carries until the GM
// response workflow resolves it.
const CandidateStatusPending = "pending"

// Candidate is one proposed booking window inside a booking request.
// Order is 1-based and round-trips with human-readable candidate labels.
// The JSON shape is persisted verbatim into reservations and consumed by the
// GM response workflow and confirmation emails; field names must not change.
type Candidate struct {
	Order     int    `json:"order"`
	Date      string `json:"date"`      // YYYY-MM-DD
	TimeSlot  string `json:"timeSlot"`  // stored label: 朝 / 昼 / 夜
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Status    string `json:"status"`
}

// Kind resolves the stored slot label.
func (c Candidate) Kind() (SlotKind, error) {
	return ParseSlotKind(c.TimeSlot)
}

// RequestedStore is a store reference inside a candidate list.
type RequestedStore struct {
	StoreID        string `json:"storeId"`
	StoreName      string `json:"storeName"`
	StoreShortName string `json:"storeShortName,omitempty"`
}

// CandidateList is the finalized structure persisted into a booking request.
type CandidateList struct {
	Candidates      []Candidate      `json:"candidates"`
	RequestedStores []RequestedStore `json:"requestedStores"`
	ConfirmedStore  *RequestedStore  `json:"confirmedStore,omitempty"`
}

// CheckStoreID returns the store the advisory staff check should run
// against: the confirmed store when one exists, else the first requested.
func (l CandidateList) CheckStoreID() string {
	if l.ConfirmedStore != nil && l.ConfirmedStore.StoreID != "" {
		return l.ConfirmedStore.StoreID
	}
	if len(l.RequestedStores) > 0 {
		return l.RequestedStores[0].StoreID
	}
	return ""
}
