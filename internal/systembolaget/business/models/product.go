package models

// Product mirrors one entry of the remote product catalog. Field names
// follow the remote API document; absent or null fields decode to zero
// values. Apk, ApkRecycling and Link are computed locally and never
// trusted from the remote source.
type Product struct {
	ProductID                 string  `json:"ProductId"`
	ProductNumber             string  `json:"ProductNumber"`
	ProductNameBold           string  `json:"ProductNameBold"`
	ProductNameThin           string  `json:"ProductNameThin"`
	Category                  string  `json:"Category"`
	ProductNumberShort        string  `json:"ProductNumberShort"`
	ProducerName              string  `json:"ProducerName"`
	SupplierName              string  `json:"SupplierName"`
	IsKosher                  bool    `json:"IsKosher"`
	BottleTextShort           string  `json:"BottleTextShort"`
	RestrictedParcelQuantity  int     `json:"RestrictedParcelQuantity"`
	Seal                      string  `json:"Seal"`
	IsOrganic                 bool    `json:"IsOrganic"`
	IsEthical                 bool    `json:"IsEthical"`
	EthicalLabel              string  `json:"EthicalLabel"`
	IsWebLaunch               bool    `json:"IsWebLaunch"`
	SellStartDate             string  `json:"SellStartDate"`
	IsCompletelyOutOfStock    bool    `json:"IsCompletelyOutOfStock"`
	IsTemporaryOutOfStock     bool    `json:"IsTemporaryOutOfStock"`
	AlcoholPercentage         float64 `json:"AlcoholPercentage"`
	Volume                    float64 `json:"Volume"`
	Price                     float64 `json:"Price"`
	Country                   string  `json:"Country"`
	OriginLevel1              string  `json:"OriginLevel1"`
	OriginLevel2              string  `json:"OriginLevel2"`
	Vintage                   int     `json:"Vintage"`
	SubCategory               string  `json:"SubCategory"`
	Type                      string  `json:"Type"`
	Style                     string  `json:"Style"`
	AssortmentText            string  `json:"AssortmentText"`
	BeverageDescriptionShort  string  `json:"BeverageDescriptionShort"`
	Usage                     string  `json:"Usage"`
	Taste                     string  `json:"Taste"`
	Assortment                string  `json:"Assortment"`
	IsManufacturingCountry    bool    `json:"IsManufacturingCountry"`
	RecycleFee                float64 `json:"RecycleFee"`
	IsRegionalRestricted      bool    `json:"IsRegionalRestricted"`
	IsInStoreSearchAssortment string  `json:"IsInStoreSearchAssortment"`
	IsNews                    bool    `json:"IsNews"`

	Apk          float64 `json:"Apk"`
	ApkRecycling float64 `json:"ApkRecycling"`
	Link         string  `json:"Link"`
}
