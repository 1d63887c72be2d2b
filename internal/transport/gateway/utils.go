package gateway

import (
	"math/rand/v2"
	"time"
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// jitterDuration jitter для интервалов ожидания с разбросом ±15%.
func jitterDuration(d time.Duration) time.Duration {
	return time.Duration(jitter(float64(d), 0.15, 0.15)) //nolint:mnd
}
