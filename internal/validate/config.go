package validate

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Env validates required configuration. Fail-fast on bad config.
func Env() error {
	if os.Getenv("DATABASE_URL") == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if len(os.Getenv("AUTH_JWT_SECRET")) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 characters")
	}
	if _, err := envDuration("AUTH_ACCESS_TTL", "24h"); err != nil {
		return fmt.Errorf("AUTH_ACCESS_TTL: %w", err)
	}
	for _, key := range []string{"AWS_BUCKET", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"} {
		if os.Getenv(key) == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func HardeningWarnings() []string {
	var warns []string

	if d, _ := envDuration("AUTH_ACCESS_TTL", "24h"); d > 24*time.Hour {
		warns = append(warns, fmt.Sprintf("AUTH_ACCESS_TTL=%s is > 24h; consider shorter session tokens", d))
	}
	if os.Getenv("REDIS_URL") == "" {
		warns = append(warns, "REDIS_URL not set; login rate limiting is disabled")
	}
	if os.Getenv("IMAGE_PUBLIC_BASE_URL") == "" {
		warns = append(warns, "IMAGE_PUBLIC_BASE_URL not set; image URLs fall back to the bucket endpoint")
	}
	return warns
}

func envDuration(key, def string) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		s = def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
