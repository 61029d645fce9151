package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/drgattacks/dag"
)

const (
	magic         uint32 = 0x44524731 // "DRG1"
	formatVersion uint16 = 1
)

// Key identifies a memoized construction: (algorithm, n, seed, degree).
// Two Keys are interchangeable iff every field matches exactly.
type Key struct {
	Algorithm string
	Size      int
	Seed      [32]byte
	Degree    int
}

// Write encodes g under key to w: a fixed magic/version/key header followed
// by each node's parent-id list, length-prefixed.
func Write(w io.Writer, key Key, g *dag.Graph) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, key); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint64(g.Size())); err != nil {
		return err
	}
	var writeErr error
	g.ForEachNode(func(v int) bool {
		ps := g.Parents(v)
		if writeErr = binary.Write(bw, binary.LittleEndian, uint32(len(ps))); writeErr != nil {
			return false
		}
		for _, p := range ps {
			if writeErr = binary.Write(bw, binary.LittleEndian, uint32(p)); writeErr != nil {
				return false
			}
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, key Key) error {
	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return err
	}
	algo := []byte(key.Algorithm)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(algo))); err != nil {
		return err
	}
	if _, err := w.Write(algo); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(key.Size)); err != nil {
		return err
	}
	if _, err := w.Write(key.Seed[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint64(key.Degree))
}

// Read decodes a Graph previously written by Write, verifying it was built
// for exactly the requested key.
func Read(r io.Reader, want Key) (*dag.Graph, error) {
	br := bufio.NewReader(r)
	got, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, ErrKeyMismatch
	}

	var n uint64
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	parents := make([][]int, n)
	for v := uint64(0); v < n; v++ {
		var count uint32
		if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		ps := make([]int, count)
		for i := range ps {
			var p uint32
			if err := binary.Read(br, binary.LittleEndian, &p); err != nil {
				return nil, err
			}
			ps[i] = int(p)
		}
		parents[v] = ps
	}
	return dag.New(parents, want.Algorithm)
}

func readHeader(r io.Reader) (Key, error) {
	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return Key{}, err
	}
	if gotMagic != magic {
		return Key{}, ErrBadMagic
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return Key{}, err
	}
	if version != formatVersion {
		return Key{}, fmt.Errorf("version %d: %w", version, ErrVersionMismatch)
	}

	var algoLen uint32
	if err := binary.Read(r, binary.LittleEndian, &algoLen); err != nil {
		return Key{}, err
	}
	algoBytes := make([]byte, algoLen)
	if _, err := io.ReadFull(r, algoBytes); err != nil {
		return Key{}, err
	}

	var key Key
	key.Algorithm = string(algoBytes)
	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return Key{}, err
	}
	key.Size = int(size)
	if _, err := io.ReadFull(r, key.Seed[:]); err != nil {
		return Key{}, err
	}
	var degree uint64
	if err := binary.Read(r, binary.LittleEndian, &degree); err != nil {
		return Key{}, err
	}
	key.Degree = int(degree)
	return key, nil
}
