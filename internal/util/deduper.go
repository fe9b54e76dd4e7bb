package util

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

// Deduper suppresses duplicate processing of the same email across broker
// redeliveries, keyed by the email fingerprint.
type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl}
}

// AcquireOnce tries to acquire a dedup lock for a given handler + email
// fingerprint. Returns true if this is the FIRST time processing, false on
// a duplicate. When redis is unavailable processing is allowed through:
// the analysis itself is idempotent, so a duplicate run is only wasted work.
func (d *Deduper) AcquireOnce(ctx context.Context, handler, fingerprint string) bool {
	key := fmt.Sprintf("dedup:%s:%s", handler, fingerprint)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}

// Release drops the dedup key so a broker redelivery of the same email is
// processed again. Called when processing fails after the key was acquired.
func (d *Deduper) Release(ctx context.Context, handler, fingerprint string) error {
	key := fmt.Sprintf("dedup:%s:%s", handler, fingerprint)
	return d.rdb.Del(ctx, key).Err()
}

// Fingerprint identifies an email by sender, subject and date. Records have
// no upstream id, so identity is content-derived.
func Fingerprint(email *model.EmailRecord) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s", email.Sender.Email, email.Subject, email.Date)
	return hex.EncodeToString(h.Sum(nil))
}
