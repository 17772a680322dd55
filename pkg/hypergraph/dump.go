package hypergraph

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// DumpMagic identifies a hypergraph dump file.
const DumpMagic uint32 = 0x48594752 // "HYGR"

// dumpVersion is bumped on incompatible layout changes.
const dumpVersion uint32 = 1

// dumpHeader is the fixed-size file header, little-endian on disk.
type dumpHeader struct {
	Magic       uint32
	Version     uint32
	NumVertices uint32
	NumEdges    uint32
	NumPins     uint32
}

// WriteDump writes the hypergraph's CSR form to a file: a fixed header
// followed by four snappy-compressed, checksummed sections (pins, offsets,
// edge weights, vertex weights). The format is the offline hand-off to
// out-of-process partitioners.
func (h *Hypergraph) WriteDump(path string) error {
	csr, err := h.Export()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	header := dumpHeader{
		Magic:       DumpMagic,
		Version:     dumpVersion,
		NumVertices: uint32(csr.NumVertices),
		NumEdges:    uint32(csr.NumEdges()),
		NumPins:     uint32(len(csr.Pins)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write dump header: %w", err)
	}

	for _, section := range [][]int32{csr.Pins, csr.Offsets, csr.EdgeWeights, csr.VertexWeights} {
		if err := writeSection(w, section); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush dump file: %w", err)
	}
	return f.Sync()
}

// writeSection writes one int32 array as: compressed length, crc32 of the
// compressed bytes, snappy block.
func writeSection(w *bufio.Writer, vals []int32) error {
	raw := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(v))
	}
	compressed := snappy.Encode(nil, raw)

	var prefix [8]byte
	binary.LittleEndian.PutUint32(prefix[0:], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(prefix[4:], crc32.ChecksumIEEE(compressed))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("failed to write section prefix: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("failed to write section data: %w", err)
	}
	return nil
}

// OpenDump reads a dump file back into a CSR through memory-mapped I/O and
// verifies checksums and export consistency before returning it.
func OpenDump(path string) (*CSR, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump file: %w", err)
	}
	defer reader.Close()

	headerSize := binary.Size(dumpHeader{})
	headerBuf := make([]byte, headerSize)
	if _, err := reader.ReadAt(headerBuf, 0); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrBadDump)
	}
	var header dumpHeader
	if err := binary.Read(bytes.NewReader(headerBuf), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDump, err)
	}
	if header.Magic != DumpMagic {
		return nil, fmt.Errorf("%w: bad magic %x", ErrBadDump, header.Magic)
	}
	if header.Version != dumpVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadDump, header.Version)
	}

	pos := int64(headerSize)
	sections := make([][]int32, 4)
	for i := range sections {
		vals, next, err := readSection(reader, pos)
		if err != nil {
			return nil, err
		}
		sections[i] = vals
		pos = next
	}

	csr := &CSR{
		NumVertices:   int(header.NumVertices),
		Pins:          sections[0],
		Offsets:       sections[1],
		EdgeWeights:   sections[2],
		VertexWeights: sections[3],
	}
	if len(csr.Pins) != int(header.NumPins) || csr.NumEdges() != int(header.NumEdges) {
		return nil, fmt.Errorf("%w: header counts disagree with sections", ErrBadDump)
	}
	if err := csr.Validate(); err != nil {
		return nil, err
	}
	return csr, nil
}

// readSection decodes one length-prefixed, checksummed snappy section.
func readSection(reader *mmap.ReaderAt, pos int64) ([]int32, int64, error) {
	var prefix [8]byte
	if _, err := reader.ReadAt(prefix[:], pos); err != nil {
		return nil, 0, fmt.Errorf("%w: truncated section prefix", ErrBadDump)
	}
	compLen := binary.LittleEndian.Uint32(prefix[0:])
	checksum := binary.LittleEndian.Uint32(prefix[4:])

	compressed := make([]byte, compLen)
	if _, err := reader.ReadAt(compressed, pos+8); err != nil {
		return nil, 0, fmt.Errorf("%w: truncated section data", ErrBadDump)
	}
	if crc32.ChecksumIEEE(compressed) != checksum {
		return nil, 0, ErrDumpChecksum
	}

	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadDump, err)
	}
	if len(raw)%4 != 0 {
		return nil, 0, fmt.Errorf("%w: section length not a multiple of 4", ErrBadDump)
	}

	vals := make([]int32, len(raw)/4)
	for i := range vals {
		vals[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return vals, pos + 8 + int64(compLen), nil
}
