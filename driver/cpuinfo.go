// SPDX-License-Identifier: MIT

package driver

import (
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// logHost records the scheduler and SIMD capabilities of the machine at debug level.
func logHost(log zerolog.Logger) {
	ev := log.Debug().
		Str("goos", runtime.GOOS).
		Str("goarch", runtime.GOARCH).
		Int("num_cpu", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0))

	switch runtime.GOARCH {
	case "amd64":
		ev = ev.Dict("x86", zerolog.Dict().
			Bool("avx", cpu.X86.HasAVX).
			Bool("avx2", cpu.X86.HasAVX2).
			Bool("avx512f", cpu.X86.HasAVX512F).
			Bool("fma", cpu.X86.HasFMA).
			Bool("sse42", cpu.X86.HasSSE42))
	case "arm64":
		ev = ev.Dict("arm64", zerolog.Dict().
			Bool("asimd", cpu.ARM64.HasASIMD).
			Bool("fp", cpu.ARM64.HasFP).
			Bool("sve", cpu.ARM64.HasSVE).
			Bool("sve2", cpu.ARM64.HasSVE2))
	}
	ev.Msg("host")
}
