// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import "fmt"

// Validate checks that every compiler entry carries every expected back-end
// with a recognized state. The first failure wins; compilers are checked in
// declaration order and back-ends in column order, so the reported entry is
// deterministic.
func Validate(conf Configuration) error {
	for _, compiler := range conf {
		for _, backend := range expectedBackends {
			status, ok := compiler.Backends[backend.Key]
			if !ok {
				return fmt.Errorf("%w: %s misses entry %s", ErrMissingField, compiler.Name, backend.Key)
			}

			if status.State == nil {
				return fmt.Errorf("%w: %s/%s misses state entry", ErrMissingState, compiler.Name, backend.Key)
			}

			if _, known := Status(*status.State).Glyph(); !known {
				return fmt.Errorf("%w: %s/%s/state unknown state: %s", ErrUnknownState, compiler.Name, backend.Key, *status.State)
			}
		}
	}

	return nil
}
