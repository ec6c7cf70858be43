package website

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ThrottleDelay is the minimum spacing between downloads.
const ThrottleDelay = 15 * time.Minute

// ErrThrottled indicates that a download was refused by the throttle file.
var ErrThrottled = errors.New("website: download throttled")

// ThrottledError reports when the next download becomes available.
type ThrottledError struct {
	Until time.Time
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("website: download throttled; next available %s", e.Until.Format(time.RFC3339))
}

func (e *ThrottledError) Is(target error) bool { return target == ErrThrottled }

// CheckThrottle returns a *ThrottledError when the throttle file at path
// holds a time after now. A missing or malformed file permits the download.
func CheckThrottle(path string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	until, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return nil
	}
	if now.Before(until) {
		return &ThrottledError{Until: until}
	}
	return nil
}

// UpdateThrottle records now+ThrottleDelay in the throttle file at path.
func UpdateThrottle(path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	until := now.Add(ThrottleDelay).UTC().Format(time.RFC3339)
	return os.WriteFile(path, []byte(until+"\n"), 0o644)
}
