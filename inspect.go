// ABOUTME: Non-interactive project summary for quick shell inspection
// ABOUTME: Prints tracks and clips in aligned columns via tabwriter

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cutline/timeline"
)

// RunInspect loads a project and writes a plain-text summary to w.
func RunInspect(projectPath string, w io.Writer) error {
	project, err := timeline.LoadProject(projectPath)
	if err != nil {
		return err
	}

	writeProjectSummary(w, project)

	return nil
}

func writeProjectSummary(w io.Writer, p timeline.Project) {
	fmt.Fprintf(w, "Project: %s\n", p.Name)
	fmt.Fprintf(w, "Duration: %s\n", p.Duration)
	fmt.Fprintf(w, "Settings: %gfps %dx%d\n",
		p.Settings.FrameRate, p.Settings.Width, p.Settings.Height)
	fmt.Fprintf(w, "Tracks: %d video, %d audio, %d text\n\n",
		p.TrackCount(timeline.TrackVideo),
		p.TrackCount(timeline.TrackAudio),
		p.TrackCount(timeline.TrackText))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TRACK\tCLIP\tSTART\tEND\tSOURCE")

	for ti := range p.Tracks {
		track := &p.Tracks[ti]

		if len(track.Clips) == 0 {
			fmt.Fprintf(tw, "%s\t(empty)\t\t\t\n", track.Name)

			continue
		}

		for ci := range track.Clips {
			clip := &track.Clips[ci]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				track.Name, clip.Name, clip.TimelineStart, clip.TimelineEnd(), clip.SourcePath)
		}
	}

	tw.Flush()
}
