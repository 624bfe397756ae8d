// ABOUTME: Glue that turns a media file into a ready-to-place timeline clip
// ABOUTME: Probes duration, derives a display name, and fills the source window

package media

import (
	"fmt"

	"cutline/timeline"
)

// ClipFromFile probes a media file and builds a clip covering its full
// source, positioned at start. The probe result is applied here, before
// the clip ever reaches a track, so placed clips always carry a settled
// SourceDuration.
func ClipFromFile(path string, start timeline.Time, probe Prober) (timeline.Clip, error) {
	if probe == nil {
		probe = Probe
	}

	info, err := probe(path)
	if err != nil {
		return timeline.Clip{}, err
	}

	if info.DurationMicros <= 0 {
		return timeline.Clip{}, fmt.Errorf("%s has no usable duration", path)
	}

	clip := timeline.NewClip(TypeForFile(path), ClipName(path), path,
		start, timeline.Time(info.DurationMicros))

	return clip, nil
}
