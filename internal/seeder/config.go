package seeder

import (
	"fmt"
	"time"
)

// Config holds archive pass settings.
type Config struct {
	ArchivePath   string
	PassTimeout   time.Duration
	MaxEntryBytes int64
}

// validate checks the settings a pass cannot run without.
func (c Config) validate() error {
	if c.ArchivePath == "" {
		return fmt.Errorf("seeder config: archive path is empty")
	}
	if c.PassTimeout <= 0 {
		return fmt.Errorf("seeder config: pass timeout must be > 0 (got %v)", c.PassTimeout)
	}
	return nil
}
