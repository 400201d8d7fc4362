package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/drinkwise/hydrocoach/models"
)

// Pending reminders live in a per-user sorted set scored by fire time. Each
// scheduling pass replaces the whole set (DEL + ZADD in one pipeline), which
// mirrors the clear-all-then-reschedule contract of the notification layer.

func pendingReminderKey(userID uint) string {
	return fmt.Sprintf("reminders:pending:%d", userID)
}

// ReplacePendingReminders swaps the user's pending set for the given rows.
// Best-effort: MySQL remains the source of truth if Redis is unavailable.
func ReplacePendingReminders(userID uint, rows []models.Reminder) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := pendingReminderKey(userID)
	pipe := rc.Pipeline()
	pipe.Del(ctx, key)
	if len(rows) > 0 {
		members := make([]redis.Z, 0, len(rows))
		var last time.Time
		for _, r := range rows {
			members = append(members, redis.Z{
				Score:  float64(r.FireAt.Unix()),
				Member: r.Identifier,
			})
			if r.FireAt.After(last) {
				last = r.FireAt
			}
		}
		pipe.ZAdd(ctx, key, members...)
		// The set is worthless after the last fire time; let it expire on its own
		pipe.ExpireAt(ctx, key, last.Add(time.Hour))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		if Sugar != nil {
			Sugar.Warnf("reminder pending set replace failed user=%d err=%v", userID, err)
		}
	}
}

// DuePendingReminders returns identifiers whose fire time is at or before now,
// and removes them from the pending set.
func DuePendingReminders(userID uint, now time.Time) []string {
	rc := GetRedis()
	if rc == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := pendingReminderKey(userID)
	max := fmt.Sprintf("%d", now.Unix())
	ids, err := rc.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: "-inf", Max: max}).Result()
	if err != nil || len(ids) == 0 {
		return nil
	}
	_ = rc.ZRemRangeByScore(ctx, key, "-inf", max).Err()
	return ids
}
