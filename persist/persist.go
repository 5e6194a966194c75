// Package persist serializes a tree.Tree to and from the on-disk format:
// a varint layer count, then each layer as a varint byte length followed
// by its raw bytes. It is the out-of-core collaborator spec.md's
// external-interfaces section describes; the wire format is plain LEB128
// varints via the standard library, matching the teacher's preference for
// stdlib encoding over a hand-rolled one where the standard library
// already does the job.
package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/YuantianDing/clifquo/internal/tree"
)

// WriteTree writes t to w in the wire format described above.
func WriteTree(w io.Writer, t *tree.Tree) error {
	bw := bufio.NewWriter(w)

	var head [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(head[:], uint64(t.NLayers()))
	if _, err := bw.Write(head[:n]); err != nil {
		return fmt.Errorf("persist: write layer count: %w", err)
	}

	for i := 0; i < t.NLayers(); i++ {
		layer := t.Layer(i)
		n := binary.PutUvarint(head[:], uint64(len(layer)))
		if _, err := bw.Write(head[:n]); err != nil {
			return fmt.Errorf("persist: write layer %d length: %w", i, err)
		}
		if _, err := bw.Write(layer); err != nil {
			return fmt.Errorf("persist: write layer %d bytes: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("persist: flush: %w", err)
	}
	return nil
}

// ReadTree reads a Tree previously written by WriteTree.
func ReadTree(r io.Reader) (*tree.Tree, error) {
	br := bufio.NewReader(r)

	nlayers, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("persist: read layer count: %w", err)
	}

	t := &tree.Tree{}
	for i := uint64(0); i < nlayers; i++ {
		length, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, fmt.Errorf("persist: read layer %d length: %w", i, err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("persist: read layer %d bytes: %w", i, err)
		}
		t.AddLayer(buf)
	}
	return t, nil
}
