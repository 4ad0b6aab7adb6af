package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes g as a Wavefront OBJ document: one "v" line per position
// followed by one "f" line per triangle with 1-based indices.
func (g *Geometry) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# lathe surface %dx%d\n", g.Angular, g.Height)
	for _, p := range g.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", g.Indices[i]+1, g.Indices[i+1]+1, g.Indices[i+2]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mesh: write obj: %w", err)
	}
	return nil
}
