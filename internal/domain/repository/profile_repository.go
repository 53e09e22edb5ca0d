package repository

import (
	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
)

// ProfileRepository enumerates the credential profiles a run iterates over.
type ProfileRepository interface {
	// ListProfiles reads the shared AWS config file and returns one entry per
	// named section, in file order. A section without a region inherits the
	// default section's region. A missing file yields an empty slice, not an
	// error.
	ListProfiles() ([]entity.Profile, error)
}
