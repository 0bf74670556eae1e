package models

// SiteAvailability is the per-site slice of the remote availability
// document: which products a single site currently carries. It is an
// ephemeral input to reconciliation and the junction rebuild, never
// persisted as-is.
type SiteAvailability struct {
	SiteID   string       `json:"SiteId"`
	Products []ProductRef `json:"Products"`
}

type ProductRef struct {
	ProductID     string `json:"ProductId"`
	ProductNumber string `json:"ProductNumber"`
}
