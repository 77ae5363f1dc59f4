package post

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAuthorName       = "Casper Capital"
	DefaultAuthorAvatarURL  = "/data/casper-capital-avatar.jpg"
	DefaultAuthorHandle     = "@socialpulse"
	DefaultFallbackPostedAt = "2026-02-14T00:00:00Z"
)

// Profile holds the dataset-specific constants applied to every post.
type Profile struct {
	Author           Author `yaml:"author"`
	FallbackPostedAt string `yaml:"fallback_posted_at"`
}

func DefaultProfile() Profile {
	return Profile{
		Author: Author{
			Name:      DefaultAuthorName,
			AvatarURL: DefaultAuthorAvatarURL,
			Handle:    DefaultAuthorHandle,
		},
		FallbackPostedAt: DefaultFallbackPostedAt,
	}
}

// LoadProfile reads a YAML profile. Unset fields keep their defaults.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	defaults := DefaultProfile()
	profile.Author.Name = firstNonZero(profile.Author.Name, defaults.Author.Name)
	profile.Author.AvatarURL = firstNonZero(profile.Author.AvatarURL, defaults.Author.AvatarURL)
	profile.Author.Handle = firstNonZero(profile.Author.Handle, defaults.Author.Handle)
	profile.FallbackPostedAt = firstNonZero(profile.FallbackPostedAt, defaults.FallbackPostedAt)

	if err := profile.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return profile, nil
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Author.Name) == "" {
		return fmt.Errorf("author name is required")
	}

	if !strings.HasSuffix(p.FallbackPostedAt, "Z") {
		return fmt.Errorf("fallback_posted_at must be a UTC timestamp ending in Z: %q", p.FallbackPostedAt)
	}
	if _, err := time.Parse(time.RFC3339Nano, p.FallbackPostedAt); err != nil {
		return fmt.Errorf("fallback_posted_at is not an ISO-8601 timestamp: %w", err)
	}

	return nil
}

// firstNonZero returns the first argument that is not the zero value
// (equivalent to cmp.Or, which requires Go 1.22).
func firstNonZero[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
