package bitcoin

const (
	defaultBackfillDepth     = 6
	defaultConfirmationDepth = 6
	defaultWindow            = 64
	defaultWorkerCount       = 4
	defaultRPS               = 50
)

// Config tunes the stream.
type Config struct {
	// BackfillDepth is how many heights below the tip the anchor starts at.
	BackfillDepth uint64
	// ConfirmationDepth is the number of blocks, the block itself included, needed for a confirm event.
	ConfirmationDepth uint64
	// Window bounds the canonical chain kept for reorg detection.
	Window uint64
	WorkerCount int
	RPS         int
}

func (c Config) withDefaults() Config {
	if c.BackfillDepth == 0 {
		c.BackfillDepth = defaultBackfillDepth
	}
	if c.ConfirmationDepth == 0 {
		c.ConfirmationDepth = defaultConfirmationDepth
	}
	if c.Window == 0 {
		c.Window = defaultWindow
	}
	if c.Window <= c.BackfillDepth {
		c.Window = c.BackfillDepth + 1
	}
	if c.Window <= c.ConfirmationDepth {
		c.Window = c.ConfirmationDepth + 1
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	return c
}
