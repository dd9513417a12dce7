// brokenio is a wrapper around an io.ReadCloser. It allows us to make
// reads fail, either at a fixed point or at random.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// When we introduce an error, we return ErrBroken.
// When we introduce a failure on the first read, we return io.EOF without
// an error. This is what one often sees on a zero length file.

package brokenio

import (
	"io"
	"math/rand"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/andrew-torda/bioflat/pkg/logger"
)

// ErrBroken is what a deliberately failed read returns.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling when reads fail.
// Probabilities run from 0 to 1, so 0.05 means failure in 5% of the calls.
// failAfter < 0 means never fail at a fixed point.
type BrknRdrClsr struct {
	rdr_orig     io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32
	failAfter    int64 // fail once this many bytes have been delivered
	nCalled      int
	nByte        int64
	nClose       int
	verbose      bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// With no further settings it behaves exactly like rIn.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdr_orig:  rIn,
		rnd:       rand.New(rand.NewSource(1)),
		failAfter: -1,
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed makes the random failures reproducible.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have gone through.
func (r *BrknRdrClsr) SetFailAfter(n int64) { r.failAfter = n }

// NClose says how often Close was called, so tests can check that
// the reader was released.
func (r *BrknRdrClsr) NClose() int { return r.nClose }

// Read wraps the underlying reader and sums up the amount of data that
// has gone through.
// On the first call, we might return zero data to simulate a zero length file.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if int64(len(p)) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += int64(n)
	return n, err
}

// Close wraps the underlying Close method.
func (r *BrknRdrClsr) Close() error {
	r.nClose++
	if r.verbose {
		logger.Logger.Infow("closing broken reader",
			zap.Int("calls", r.nCalled), zap.Int64(logger.FieldSize, r.nByte))
	}
	return r.rdr_orig.Close()
}
