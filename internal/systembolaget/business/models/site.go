package models

// Site mirrors one entry of the remote site catalog. OpeningHours and
// Position arrive with the document but only the flat attributes are
// persisted.
type Site struct {
	SiteID                string        `json:"SiteId"`
	IsTastingStore        bool          `json:"IsTastingStore"`
	Alias                 string        `json:"Alias"`
	Address               string        `json:"Address"`
	DisplayName           string        `json:"DisplayName"`
	PostalCode            string        `json:"PostalCode"`
	City                  string        `json:"City"`
	County                string        `json:"County"`
	Country               string        `json:"Country"`
	IsStore               bool          `json:"IsStore"`
	IsAgent               bool          `json:"IsAgent"`
	IsActiveForAgentOrder bool          `json:"IsActiveForAgentOrder"`
	Phone                 string        `json:"Phone"`
	Email                 string        `json:"Email"`
	Services              string        `json:"Services"`
	OpeningHours          []OpeningTime `json:"OpeningHours"`
	Depot                 string        `json:"Depot"`
	Name                  string        `json:"Name"`
	Position              Position      `json:"Position"`
}

type OpeningTime struct {
	IsOpen   bool   `json:"IsOpen"`
	Reason   string `json:"Reason"`
	Date     string `json:"Date"`
	OpenFrom string `json:"OpenFrom"`
	OpenTo   string `json:"OpenTo"`
}

type Position struct {
	Lat  float64 `json:"Lat"`
	Long float64 `json:"Long"`
}
