// File: dot.go
// Role: Graphviz export of the current residual graph.
package qnet

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ToDot writes a Graphviz digraph description of the current residual
// graph to w. Every node is declared (isolated nodes included) and every
// edge is labelled with its residual capacity. Complexity: O(V + E).
func (net *Network) ToDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	for u := range net.out {
		if _, err := fmt.Fprintf(w, "  %d;\n", u); err != nil {
			return err
		}
	}
	for u := range net.out {
		for _, idx := range net.out[u] {
			e := &net.edges[idx]
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=\"%g\"];\n", e.from, e.to, e.cap); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}

	return nil
}

// ToDotFile writes the Graphviz description to the named file, truncating
// any existing content.
func (net *Network) ToDotFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("qnet: creating dot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("qnet: closing dot file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = net.ToDot(bw); err != nil {
		return err
	}

	return bw.Flush()
}
