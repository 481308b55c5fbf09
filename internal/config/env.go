// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg, a *StructuredConfig or a *ClientConfig, from the
// process environment. Variables loaded from .env by withDotEnv are already
// part of it at this point. Unset variables leave fields at their zero
// value; defaults are applied later.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs for %T: %w", cfg, err)
	}

	return nil
}
