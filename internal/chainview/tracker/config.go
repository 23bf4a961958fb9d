package tracker

import "fmt"

// DuplicatePolicy decides how a re-add of an already tracked hash is handled.
type DuplicatePolicy string

var (
	// DuplicateReplace accepts a re-add with identical linkage as a no-op.
	DuplicateReplace DuplicatePolicy = "replace"
	// DuplicateReject fails a re-add with model.ErrDuplicateBlock.
	DuplicateReject DuplicatePolicy = "reject"
)

// DefaultRetentionWindow is the number of trailing heights kept behind the newest added block.
const DefaultRetentionWindow uint64 = 20

// Config configures a Tracker.
type Config struct {
	RetentionWindow uint64
	DuplicatePolicy DuplicatePolicy
}

func (c Config) withDefaults() (Config, error) {
	if c.RetentionWindow == 0 {
		c.RetentionWindow = DefaultRetentionWindow
	}
	switch c.DuplicatePolicy {
	case "":
		c.DuplicatePolicy = DuplicateReplace
	case DuplicateReplace, DuplicateReject:
	default:
		return c, fmt.Errorf("unknown duplicate policy %q", c.DuplicatePolicy)
	}
	return c, nil
}
