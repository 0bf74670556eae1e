package apk

import "gosystembolaget_api/internal/systembolaget/business/models"

// density is the mass density of ethanol in g/l, fixed by the metric
// definition.
const density = 789.0

// Apk is alcohol (grams of ethanol) per unit currency. Volume is in
// milliliters and alcoholPercentage in absolute percent, hence the
// 1000*100 in the denominator. A zero volume, strength or price makes
// the metric not applicable and yields 0.0.
func Apk(volume, alcoholPercentage, price float64) float64 {
	if volume == 0 || alcoholPercentage == 0 || price == 0 {
		return 0.0
	}
	return volume * alcoholPercentage * density / (price * 1000.0 * 100.0)
}

// ApkRecycling is Apk net of the recycling fee: the fee is added to the
// price in the denominator. Degenerate inputs yield 0.0 as with Apk.
func ApkRecycling(volume, alcoholPercentage, price, recycleFee float64) float64 {
	if volume == 0 || alcoholPercentage == 0 || price == 0 {
		return 0.0
	}
	return volume * alcoholPercentage * density / ((price + recycleFee) * 1000.0 * 100.0)
}

// Enrich recomputes both derived metrics on the product in place,
// overwriting whatever the remote document carried.
func Enrich(p *models.Product) {
	p.Apk = Apk(p.Volume, p.AlcoholPercentage, p.Price)
	p.ApkRecycling = ApkRecycling(p.Volume, p.AlcoholPercentage, p.Price, p.RecycleFee)
}
