// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import "errors"

var (
	// ErrReadConfigFile is returned when configuration file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrDecodeConfig is returned when configuration decoding fails.
	ErrDecodeConfig = errors.New("decode config")
	// ErrConfigRoot is returned when the configuration root is not a mapping of compilers.
	ErrConfigRoot = errors.New("config root must be a mapping of compilers")
	// ErrDuplicateCompiler is returned when one compiler name is declared twice.
	ErrDuplicateCompiler = errors.New("duplicate compiler entry")
	// ErrMissingField is returned when a compiler entry lacks an expected back-end.
	ErrMissingField = errors.New("missing backend entry")
	// ErrMissingState is returned when a back-end entry lacks the state key.
	ErrMissingState = errors.New("missing state entry")
	// ErrUnknownState is returned when a state value is not one of the recognized statuses.
	ErrUnknownState = errors.New("unknown state")
	// ErrUnknownSkeletonFormat is returned when skeleton output format is not supported.
	ErrUnknownSkeletonFormat = errors.New("unknown skeleton format")
	// ErrEncodeSkeletonJSON is returned when skeleton JSON encoding fails.
	ErrEncodeSkeletonJSON = errors.New("encode skeleton json")
	// ErrEncodeSkeletonYAML is returned when skeleton YAML encoding fails.
	ErrEncodeSkeletonYAML = errors.New("encode skeleton yaml")
)
