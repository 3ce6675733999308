package notify

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

type BreakerConfig struct {
	Timeout          time.Duration // hard timeout per send
	FailureThreshold int           // consecutive failures to open circuit
	Cooldown         time.Duration // how long to stay open before half-open
	HalfOpenMaxCalls int           // allow N trial calls in half-open
}

// Breaker guards one provider. Each channel gets its own instance so an SMS
// outage never blocks email.
type Breaker struct {
	cfg BreakerConfig
	mu  sync.Mutex

	state string // "closed" | "open" | "half_open"

	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	//defaults
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Second
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 1
	}

	return &Breaker{
		cfg:   cfg,
		state: "closed",
	}
}

func (b *Breaker) Do(ctx context.Context, send func(context.Context) error) error {
	// fail-fast gate

	if !b.allowRequest() {
		return ErrCircuitOpen
	}
	// enforce timeout

	sendCtx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	err := send(sendCtx)

	b.afterRequest(err)

	return err
}

func (b *Breaker) allowRequest() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case "closed":
		return true
	case "open":
		// cooldown has passed? move to half open

		if time.Since(b.openedAt) >= b.cfg.Cooldown {
			b.state = "half_open"
			b.halfOpenInFlight = 0
			return true
		}
		return false
	case "half_open":
		if b.halfOpenInFlight >= b.cfg.HalfOpenMaxCalls {
			return false
		}
		b.halfOpenInFlight++
		return true

	default:
		// safe fallback
		return true
	}
}

func (b *Breaker) afterRequest(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// half-open call just finished
	if b.state == "half_open" && b.halfOpenInFlight > 0 {
		b.halfOpenInFlight--
	}

	if err == nil {
		// success => close circuit and reset counters
		b.consecutiveFailures = 0
		b.state = "closed"
		return
	}

	// failure
	b.consecutiveFailures++

	// if half-open failed, reopen immediately
	if b.state == "half_open" {
		b.state = "open"
		b.openedAt = time.Now()
		return
	}

	// if failures reached threshold, open circuit
	if b.consecutiveFailures >= b.cfg.FailureThreshold {
		b.state = "open"
		b.openedAt = time.Now()
	}
}

// ProtectedSMSDispatcher wraps an SMS dispatcher with a breaker.
type ProtectedSMSDispatcher struct {
	inner   SMSDispatcher
	breaker *Breaker
}

func NewProtectedSMSDispatcher(inner SMSDispatcher, cfg BreakerConfig) *ProtectedSMSDispatcher {
	return &ProtectedSMSDispatcher{inner: inner, breaker: NewBreaker(cfg)}
}

func (d *ProtectedSMSDispatcher) SendSMS(ctx context.Context, msg SMSMessage) error {
	return d.breaker.Do(ctx, func(c context.Context) error {
		return d.inner.SendSMS(c, msg)
	})
}

// ProtectedEmailDispatcher wraps an email dispatcher with a breaker.
type ProtectedEmailDispatcher struct {
	inner   EmailDispatcher
	breaker *Breaker
}

func NewProtectedEmailDispatcher(inner EmailDispatcher, cfg BreakerConfig) *ProtectedEmailDispatcher {
	return &ProtectedEmailDispatcher{inner: inner, breaker: NewBreaker(cfg)}
}

func (d *ProtectedEmailDispatcher) SendEmail(ctx context.Context, msg EmailMessage) error {
	return d.breaker.Do(ctx, func(c context.Context) error {
		return d.inner.SendEmail(c, msg)
	})
}
