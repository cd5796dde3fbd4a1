package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Directory.validate(); err != nil {
		return fmt.Errorf("directory: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Demand.validate(); err != nil {
		return fmt.Errorf("demand: %w", err)
	}

	if c.Redis.URL != "" && c.Redis.ClientCacheTTL <= 0 {
		return fmt.Errorf("redis: client_cache_ttl must be > 0 (got %v)", c.Redis.ClientCacheTTL)
	}

	if c.Cleanup.OrphanRetention < 0 {
		return fmt.Errorf("cleanup: orphan_retention must be >= 0 (got %v)", c.Cleanup.OrphanRetention)
	}

	return nil
}

func (d *DirectoryConfig) validate() error {
	for name, raw := range map[string]string{"clients_url": d.ClientsURL, "users_url": d.UsersURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Backend) {
	case "filesystem":
		if s.Root == "" {
			return fmt.Errorf("root is required for the filesystem backend")
		}
	case "s3":
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for the s3 backend")
		}
	default:
		return fmt.Errorf("backend must be filesystem or s3 (got %q)", s.Backend)
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (d *DemandConfig) validate() error {
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if d.NewestLimit <= 0 {
		return fmt.Errorf("newest_limit must be > 0 (got %d)", d.NewestLimit)
	}
	if d.MutateRetries <= 0 {
		return fmt.Errorf("mutate_retries must be > 0 (got %d)", d.MutateRetries)
	}
	return nil
}
