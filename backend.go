// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

const (
	// StatusYes marks a back-end as supported by the compiler.
	StatusYes Status = "yes"
	// StatusNo marks a back-end as not supported by the compiler.
	StatusNo Status = "no"
	// StatusNone marks a back-end as not applicable for the compiler.
	StatusNone Status = "none"
)

// Status is one closed support state value from the configuration.
type Status string

// Glyph returns the markdown cell symbol for the status and reports whether
// the status value is recognized.
func (status Status) Glyph() (string, bool) {
	switch status {
	case StatusYes:
		return "✅", true
	case StatusNo:
		return "❌", true
	case StatusNone:
		return "-", true
	default:
		return "", false
	}
}

// KnownStatuses returns every recognized status value.
func KnownStatuses() []Status {
	return []Status{StatusYes, StatusNo, StatusNone}
}

// Backend is one accelerator back-end column: configuration key plus the
// human-readable markdown column label.
type Backend struct {
	Key   string
	Label string
}

// rowLabelHeading is the header cell of the row-label column.
const rowLabelHeading = "Accelerator Back-end"

// expectedBackends lists the expected back-ends; slice order is column order.
var expectedBackends = []Backend{
	{Key: "serial", Label: "Serial"},
	{Key: "OMPblock", Label: "OpenMP 2.0+ blocks"},
	{Key: "OMPthread", Label: "OpenMP 2.0+ threads"},
	{Key: "thread", Label: "std::thread"},
	{Key: "tbb", Label: "TBB"},
	{Key: "CUDAnvcc", Label: "CUDA (nvcc)"},
	{Key: "CUDAclang", Label: "CUDA (clang)"},
	{Key: "hip", Label: "HIP (clang)"},
	{Key: "sycl", Label: "SYCL"},
}

// Backends returns the expected back-ends in column order.
func Backends() []Backend {
	out := make([]Backend, len(expectedBackends))
	copy(out, expectedBackends)
	return out
}
