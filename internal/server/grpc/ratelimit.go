package grpc

import (
	"sync"
	"time"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"golang.org/x/time/rate"
)

// RateLimits configures per-peer token buckets. Strict limits apply to the
// credential-bearing methods on top of the general one. A zero rate disables
// that tier.
type RateLimits struct {
	RPS         float64
	Burst       int
	StrictRPS   float64
	StrictBurst int
}

// strictMethods accept passwords, codes or reset tokens.
var strictMethods = map[string]bool{
	pb.AuthService_Register_FullMethodName:       true,
	pb.AuthService_Login_FullMethodName:          true,
	pb.AuthService_VerifyOTP_FullMethodName:      true,
	pb.AuthService_ForgotPassword_FullMethodName: true,
	pb.AuthService_ResetPassword_FullMethodName:  true,
}

const (
	limiterIdleTTL  = 10 * time.Minute
	limiterSweepLen = 4096
)

type peerBuckets struct {
	general  *rate.Limiter
	strict   *rate.Limiter
	lastSeen time.Time
}

type peerLimiter struct {
	limits RateLimits
	now    func() time.Time

	mu    sync.Mutex
	peers map[string]*peerBuckets
}

func newPeerLimiter(limits RateLimits) *peerLimiter {
	return &peerLimiter{limits: limits, now: time.Now, peers: make(map[string]*peerBuckets)}
}

func newBucket(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Allow reports whether peer may call fullMethod now.
func (l *peerLimiter) Allow(peer, fullMethod string) bool {
	if l.limits.RPS <= 0 && l.limits.StrictRPS <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.peers[peer]
	if !ok {
		if len(l.peers) >= limiterSweepLen {
			l.sweep(now)
		}
		b = &peerBuckets{
			general: newBucket(l.limits.RPS, l.limits.Burst),
			strict:  newBucket(l.limits.StrictRPS, l.limits.StrictBurst),
		}
		l.peers[peer] = b
	}
	b.lastSeen = now

	if b.general != nil && !b.general.AllowN(now, 1) {
		return false
	}
	if strictMethods[fullMethod] && b.strict != nil && !b.strict.AllowN(now, 1) {
		return false
	}
	return true
}

// sweep drops peers idle longer than limiterIdleTTL. Caller holds mu.
func (l *peerLimiter) sweep(now time.Time) {
	for k, b := range l.peers {
		if now.Sub(b.lastSeen) > limiterIdleTTL {
			delete(l.peers, k)
		}
	}
}
