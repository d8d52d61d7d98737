package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestCircuitBreaker_ErrorWrapping(t *testing.T) {
	breaker := NewCircuitBreaker("wrap-test", 30*time.Second, 3)
	testError := errors.New("upstream unavailable")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "breaker (wrap-test)")
	assert.ErrorIs(t, err, testError)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2)

	for i := 0; i < 2; i++ {
		err := breaker.Execute(func() error {
			return errors.New("failure")
		})
		assert.Error(t, err)
	}

	// Circuit is open now, calls fail without running fn.
	ran := false
	err := breaker.Execute(func() error {
		ran = true
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.False(t, ran)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	breaker := NewCircuitBreaker("reset-test", 30*time.Second, 2)
	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	_ = breaker.Execute(func() error { return errors.New("fail") }) //nolint:errcheck
	_ = breaker.Execute(func() error { return nil })                //nolint:errcheck
	_ = breaker.Execute(func() error { return errors.New("fail") }) //nolint:errcheck

	// One consecutive failure is below the trip threshold.
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("trigger")
	})
	assert.Error(t, err)

	time.Sleep(100 * time.Millisecond)

	err = breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}
