package util

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"
)

// OrphanRule describes one family of stored objects whose name carries the
// id of the record that references them, e.g. "credentials/<id>.png".
type OrphanRule struct {
	Bucket string
	Prefix string
	// Exists reports whether the owning record is present.
	Exists func(ctx context.Context, id string) (bool, error)
}

type orphanStore interface {
	ListOlder(ctx context.Context, bucketName string, prefix string, before time.Time) ([]string, error)
	Remove(ctx context.Context, ref string) error
}

// StartOrphanCleanupJob periodically removes objects left behind when a
// template or credential failed to persist after its image was stored.
// Objects younger than grace are skipped so in-flight requests are never
// swept.
func StartOrphanCleanupJob(ctx context.Context, store orphanStore, rules []OrphanRule, interval time.Duration, grace time.Duration) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in orphan cleanup job", "panic", r)
			}
		}()

		slog.Info("Orphan cleanup job: Initial run starting")
		CleanupOrphans(ctx, store, rules, time.Now().Add(-grace))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				slog.Info("Orphan cleanup job: Scheduled run starting")
				CleanupOrphans(ctx, store, rules, time.Now().Add(-grace))
			}
		}
	}()

	slog.Info("Orphan cleanup job started successfully")
}

// CleanupOrphans removes objects created before cutoff whose record does
// not exist and returns how many were removed.
func CleanupOrphans(ctx context.Context, store orphanStore, rules []OrphanRule, cutoff time.Time) int {
	startTime := time.Now()
	removed := 0

	for _, rule := range rules {
		refs, err := store.ListOlder(ctx, rule.Bucket, rule.Prefix, cutoff)
		if err != nil {
			slog.Error("CleanupOrphans: Failed to list objects", "error", err, "bucket", rule.Bucket, "prefix", rule.Prefix)
			continue
		}

		for _, ref := range refs {
			id := recordID(ref, rule.Prefix)
			if id == "" {
				continue
			}
			exists, err := rule.Exists(ctx, id)
			if err != nil {
				slog.Warn("CleanupOrphans: Lookup failed", "error", err, "ref", ref)
				continue
			}
			if exists {
				continue
			}
			if err := store.Remove(ctx, ref); err != nil {
				slog.Warn("CleanupOrphans: Remove failed", "error", err, "ref", ref)
				continue
			}
			removed++
		}
	}

	slog.Info("CleanupOrphans: Completed", "removed", removed, "duration", time.Since(startTime))
	return removed
}

// recordID turns "bucket/credentials/abc.png" into "abc".
func recordID(ref string, prefix string) string {
	_, object, err := SplitObjectRef(ref)
	if err != nil {
		return ""
	}
	name := strings.TrimPrefix(object, prefix)
	name = strings.TrimPrefix(name, "/")
	return strings.TrimSuffix(name, path.Ext(name))
}
