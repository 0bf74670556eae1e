package apk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gosystembolaget_api/internal/systembolaget/business/models"
)

func TestApkKnownValue(t *testing.T) {
	// 750 ml of 12.5% wine for 89 kr:
	// 750 * 12.5 * 789 / (89 * 100000)
	got := Apk(750, 12.5, 89)
	assert.InDelta(t, 0.83111, got, 1e-5)
}

func TestApkZeroInputsYieldZero(t *testing.T) {
	assert.Equal(t, 0.0, Apk(0, 12.5, 89))
	assert.Equal(t, 0.0, Apk(750, 0, 89))
	assert.Equal(t, 0.0, Apk(750, 12.5, 0))

	assert.Equal(t, 0.0, ApkRecycling(0, 12.5, 89, 1))
	assert.Equal(t, 0.0, ApkRecycling(750, 0, 89, 1))
	assert.Equal(t, 0.0, ApkRecycling(750, 12.5, 0, 1))
}

func TestApkRecyclingNeverExceedsApk(t *testing.T) {
	plain := Apk(330, 5.2, 15)
	withFee := ApkRecycling(330, 5.2, 15, 1)
	assert.Less(t, withFee, plain)

	noFee := ApkRecycling(330, 5.2, 15, 0)
	assert.Equal(t, plain, noFee)
}

func TestEnrichOverwritesRemoteValues(t *testing.T) {
	p := &models.Product{
		Volume:            750,
		AlcoholPercentage: 12.5,
		Price:             89,
		RecycleFee:        0,
		Apk:               999,
		ApkRecycling:      999,
	}

	Enrich(p)

	assert.InDelta(t, 0.83111, p.Apk, 1e-5)
	assert.Equal(t, p.Apk, p.ApkRecycling)
}
