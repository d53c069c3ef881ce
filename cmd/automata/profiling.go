package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"github.com/rs/zerolog"
)

// startCPUProfile samples the process into path until stop is called. stop is
// safe to call more than once; only the first call flushes the profile.
func startCPUProfile(path string, logger zerolog.Logger) (stop func(), err error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(out); err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("cpu profile %q: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("cpu profiling started")

	var once sync.Once
	stop = func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := out.Close(); err != nil {
				logger.Error().Err(err).Str("path", path).Msg("closing cpu profile")
				return
			}
			logger.Info().Str("path", path).Msg("cpu profile written")
		})
	}
	return stop, nil
}
