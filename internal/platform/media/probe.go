// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prober reads the playback duration of a local video file, in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FFProbe runs the ffprobe binary.
type FFProbe struct {
	Binary string
}

// NewFFProbe returns a prober for binary, or nil when it is not on PATH.
// Callers treat a nil prober as "duration unknown".
func NewFFProbe(binary string) *FFProbe {
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return nil
	}
	return &FFProbe{Binary: resolved}
}

// Duration returns the container duration reported by ffprobe.
func (probe *FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	command := exec.CommandContext(ctx, probe.Binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	output, err := command.Output()
	if err != nil {
		return 0, fmt.Errorf("media: ffprobe failed: %w", err)
	}

	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's duration output ("12.345000\n").
// "N/A" (live or broken containers) yields 0.
func ParseDuration(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" || value == "N/A" {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("media: unexpected ffprobe output %q: %w", value, err)
	}
	if seconds < 0 {
		return 0, nil
	}
	return seconds, nil
}
