package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

func testRetryConfig() config.RetryConfig {
	return config.RetryConfig{
		MaxRetries: 3,
		Base:       time.Second,
		Multiplier: 2,
		MaxBackoff: 300 * time.Second,
	}
}

func TestRetryRouter_Route(t *testing.T) {
	router := NewRetryRouter(testRetryConfig())

	t.Run("qa pass routes to cto approval", func(t *testing.T) {
		route := router.Route(RetryState{QAPassed: true, SafetyScore: 1, RetryCount: 0})
		assert.Equal(t, RouteCTOApproval, route)
	})

	t.Run("qa pass wins even with retries spent", func(t *testing.T) {
		route := router.Route(RetryState{QAPassed: true, SafetyScore: 1, RetryCount: 3})
		assert.Equal(t, RouteCTOApproval, route)
	})

	t.Run("unsafe work escalates regardless of retries", func(t *testing.T) {
		route := router.Route(RetryState{QAPassed: false, SafetyScore: 0.2, RetryCount: 0})
		assert.Equal(t, RouteEscalate, route)
	})

	t.Run("one retry left loops through dev_fix", func(t *testing.T) {
		route := router.Route(RetryState{QAPassed: false, SafetyScore: 1, RetryCount: 2})
		assert.Equal(t, RouteDevFix, route)
	})

	t.Run("retries exhausted escalates", func(t *testing.T) {
		route := router.Route(RetryState{QAPassed: false, SafetyScore: 1, RetryCount: 3})
		assert.Equal(t, RouteEscalate, route)
	})
}

func TestRetryRouter_Backoff(t *testing.T) {
	router := NewRetryRouter(testRetryConfig())

	assert.Equal(t, time.Second, router.Backoff(0))
	assert.Equal(t, 2*time.Second, router.Backoff(1))
	assert.Equal(t, 4*time.Second, router.Backoff(2))

	t.Run("caps at max backoff", func(t *testing.T) {
		assert.Equal(t, 300*time.Second, router.Backoff(20))
	})

	t.Run("jitter stays within half to full delay", func(t *testing.T) {
		jittered := NewRetryRouter(config.RetryConfig{
			MaxRetries: 3,
			Base:       time.Second,
			Multiplier: 2,
			MaxBackoff: 300 * time.Second,
			Jitter:     true,
		})
		for i := 0; i < 20; i++ {
			d := jittered.Backoff(2)
			assert.GreaterOrEqual(t, d, 2*time.Second)
			assert.LessOrEqual(t, d, 4*time.Second)
		}
	})
}

func TestRetryRouter_NewBackoff(t *testing.T) {
	router := NewRetryRouter(testRetryConfig())
	b := router.NewBackoff()

	first := b.NextBackOff()
	assert.Equal(t, time.Second, first)
	second := b.NextBackOff()
	assert.Equal(t, 2*time.Second, second)
}
