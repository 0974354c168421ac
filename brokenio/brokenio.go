// brokenio is a wrapper around an io.ReadCloser which fails on demand.
// Typical use: in a test, you have a reader for a structure file. You
// write
//   rdr = brokenio.NewReader(rdr)
// set the failure rates, and hand it to the code being tested.
// Everything functions as before, but with artificial errors.
// When we damage a read, we return an error.
// When we fake a zero length file on the first read, we return io.EOF
// and no error, which is what one sees with an empty file.

package brokenio

import (
	"fmt"
	"io"
	"math/rand"
)

// BrknRdrClsr wraps a reader. The probabilities are the fraction of
// calls on which something goes wrong, so 0.05 means 5% of the time.
type BrknRdrClsr struct {
	rdr_orig     io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability that a read is damaged
	fracFail     float32 // Fraction of a damaged buffer which is wiped
	nCalled      int
	nByte        int
}

// NewReader returns a new reader wrapped around the old one.
// Nothing fails until one of the Set functions is called.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdr_orig: rIn,
		rnd:      rand.New(rand.NewSource(1)),
		fracFail: 0.5,
	}
}

// SetSeed makes runs repeatable with a different sequence of failures
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd.Seed(seed) }

// SetFracFail sets the fraction of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// NByte says how many bytes came from the wrapped reader
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	err := fmt.Errorf("brokenio: wiped out last %d of %d bytes", len(p)-nkeep, len(p))
	clear(p[nkeep:])
	return nkeep, err
}

// Read passes the call on to the wrapped reader and counts the data
// going through. With probability probFail the data read is damaged and
// an error returned.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if r.rnd.Float32() < r.probZeroFile {
			r.nCalled++
			return 0, io.EOF
		}
	}
	n, err = r.rdr_orig.Read(p)
	r.nCalled++
	r.nByte += n
	if n > 0 && r.rnd.Float32() < r.probFail && r.fracFail > 0 {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdr_orig.Close() }
