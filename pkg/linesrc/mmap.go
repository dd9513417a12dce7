// 3 Aug 2020
// Memory mapping was the fastest way of counting through big fasta
// files, so we offer it here too. It only makes sense for uncompressed
// regular files, so anything else falls back to the buffered reader.

package linesrc

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding"

	"github.com/andrew-torda/bioflat/pkg/zwrap"
)

// mappedFile unmaps, then closes the file.
type mappedFile struct {
	mm mmap.MMap
	fp *os.File
}

func (m *mappedFile) Close() error {
	return errors.CombineErrors(m.mm.Unmap(), m.fp.Close())
}

// openMapped returns ok == false if the file should be read the
// ordinary way. The file pointer is not closed in that case.
func openMapped(fp *os.File, dec *encoding.Decoder, opts Options) (*Source, bool, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, false, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return nil, false, nil // cannot map a pipe or an empty file
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, false, err
	}
	if zwrap.Sniff(mm) != zwrap.Plain {
		if err := mm.Unmap(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	mf := &mappedFile{mm: mm, fp: fp}
	return newSource(bytes.NewReader(mm), mf, dec, opts), true, nil
}
