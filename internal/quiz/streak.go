package quiz

import (
	"context"
	"fmt"

	"github.com/harini/sciquiz/internal/store"
)

// streakKey is the cross-quiz streak counter in the shared store. It is
// global, not scope-specific: a streak carries across subjects until an
// incorrect answer, a timeout, or a completed quiz resets it.
const streakKey = "streak"

// CelebrationThreshold is the streak length at which the feedback view
// starts congratulating the player.
const CelebrationThreshold = 2

func loadStreak(ctx context.Context, kv store.KV) (int, error) {
	var streak int
	if _, err := kv.Get(ctx, streakKey, &streak); err != nil {
		return 0, fmt.Errorf("read streak: %w", err)
	}
	if streak < 0 {
		streak = 0
	}
	return streak, nil
}

func saveStreak(ctx context.Context, kv store.KV, streak int) error {
	if err := kv.Put(ctx, streakKey, streak); err != nil {
		return fmt.Errorf("write streak: %w", err)
	}
	return nil
}

// CelebrationMessage returns the congratulation line for a streak, or ""
// below the threshold.
func CelebrationMessage(streak int, lang string) string {
	if streak < CelebrationThreshold {
		return ""
	}
	if streak == 2 {
		if lang == "ta" {
			return "அற்புதம்! இரண்டு தொடர்ச்சி!"
		}
		return "Amazing! Two in a row!"
	}
	if lang == "ta" {
		return fmt.Sprintf("நம்பமுடியாதது! %d தொடர்ச்சி!", streak)
	}
	return fmt.Sprintf("Incredible! %d in a row!", streak)
}
