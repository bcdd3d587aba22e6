// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// applyDefaults fills fields that no configuration source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Flash.Backend == "" {
		cfg.Flash.Backend = FlashBackendCookie
	}
	if cfg.Flash.TTL == 0 {
		cfg.Flash.TTL = DefaultFlashTTL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" {
		return fmt.Errorf("%w: empty base URL", ErrInvalidAdapterConfigs)
	}
	if _, err := url.Parse(cfg.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	switch cfg.Flash.Backend {
	case FlashBackendCookie:
	case FlashBackendRedis:
		if cfg.Flash.RedisAddress == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidFlashConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidFlashConfigs, cfg.Flash.Backend)
	}

	return nil
}
