// SPDX-License-Identifier: MIT

package driver

import (
	"errors"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/matrixio"
)

var (
	// ErrUsage indicates wrong positional arguments or invalid flags.
	ErrUsage = errors.New("driver: usage")

	// ErrVerify indicates that --verify found diverging products.
	ErrVerify = errors.New("driver: results diverge")
)

// Kind classifies a failure for diagnostics.
type Kind int

// Failure kinds; KindNone means success.
const (
	KindNone Kind = iota
	KindUsage
	KindIO
	KindFormat
	KindDimensionMismatch
	KindVerify
	KindInternal
)

var kindNames = [...]string{
	KindNone:              "none",
	KindUsage:             "usage",
	KindIO:                "io",
	KindFormat:            "format",
	KindDimensionMismatch: "dimension_mismatch",
	KindVerify:            "verify",
	KindInternal:          "internal",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Classify maps err onto a Kind by matching the sentinel errors it wraps.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUsage):
		return KindUsage
	case errors.Is(err, matrixio.ErrFormat):
		return KindFormat
	case errors.Is(err, matrixio.ErrOpen), errors.Is(err, matrixio.ErrCreate):
		return KindIO
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrVerify):
		return KindVerify
	default:
		return KindInternal
	}
}

// Exit statuses of the process.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode returns ExitSuccess for nil and ExitFailure for every failure kind.
func ExitCode(err error) int {
	if Classify(err) == KindNone {
		return ExitSuccess
	}

	return ExitFailure
}
