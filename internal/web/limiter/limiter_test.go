package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterBlocksAfterMax(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Check("10.0.0.1"))
		l.Record("10.0.0.1")
	}

	assert.False(t, l.Check("10.0.0.1"))

	// Other IPs are unaffected.
	assert.True(t, l.Check("10.0.0.2"))
}

func TestLimiterWindowExpires(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	l.Record("10.0.0.1")
	assert.False(t, l.Check("10.0.0.1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Check("10.0.0.1"))
}
