package response

// SiteName is the trimmed site view returned to callers listing stores.
type SiteName struct {
	SiteID   string `json:"SiteId"`
	SiteName string `json:"SiteName"`
}
