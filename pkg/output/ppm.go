package output

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM encodes the frame as a plain-text P3 portable pixmap: a header of
// "P3", "<width> <height>" and "255", then one line per row holding an
// "r g b " triple for every column.
func WritePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for row := 0; row < frame.Height; row++ {
		for _, p := range frame.Row(row) {
			if _, err := fmt.Fprintf(bw, "%d %d %d ", p.R, p.G, p.B); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
