package app

import (
	"io"

	"github.com/gookit/color"
)

// version is the launcher's release version, shown in the startup banner.
const version = "0.4.0"

// printBanner writes the startup banner shown before handing off to the
// selected backend.
func printBanner(outW io.Writer) {
	color.Fprintf(outW, "<bold>nblaunch v%s</>\n", version)
	color.Fprintln(outW, "<gray>Please wait while the notebook server starts...</>")
	color.Fprintln(outW, "<gray>Press Control-C twice to stop the server.</>")
}
