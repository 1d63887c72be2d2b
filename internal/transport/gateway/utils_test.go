package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitter(t *testing.T) {
	for range 100 {
		v := jitter(100, 0.1, 0.2)
		assert.GreaterOrEqual(t, v, 90.0)
		assert.LessOrEqual(t, v, 120.0)
	}

	// отрицательные проценты заменяются на 15%.
	for range 100 {
		v := jitter(100, -1, 0.5)
		assert.GreaterOrEqual(t, v, 85.0)
		assert.LessOrEqual(t, v, 115.0)
	}

	d := jitterDuration(time.Second)
	assert.GreaterOrEqual(t, d, 850*time.Millisecond)
	assert.LessOrEqual(t, d, 1150*time.Millisecond)
}
