package lump

import (
	"fmt"

	"github.com/arloliu/vbsp/errs"
)

// Decoder decodes one record from a reader limited to the record width.
type Decoder[T any] func(r *Reader) (T, error)

// VersionedDecoder decodes one record of a lump whose layout depends on
// the directory version.
type VersionedDecoder[T any] func(r *Reader, version uint32) (T, error)

// ReadVec decodes the remaining bytes of r as records of elemSize bytes.
//
// Parameters:
//   - r: Lump reader; decoding starts at the cursor
//   - elemSize: On-disk width of one record, must be positive
//   - fn: Record decoder
//
// Returns:
//   - []T: Decoded records in file order; never a partial list
//   - error: *errs.LumpSizeError when the length is not a multiple of
//     elemSize, *errs.RecordSizeError when fn consumed a different width,
//     or the first error returned by fn
func ReadVec[T any](r *Reader, elemSize int, fn Decoder[T]) ([]T, error) {
	return ReadVecVersioned(r, elemSize, func(r *Reader, _ uint32) (T, error) {
		return fn(r)
	})
}

// ReadVecVersioned is ReadVec for decoders that need the lump version.
func ReadVecVersioned[T any](r *Reader, elemSize int, fn VersionedDecoder[T]) ([]T, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("lump %s: invalid element size %d", r.lump, elemSize)
	}

	size := r.Remaining()
	if size%elemSize != 0 {
		return nil, &errs.LumpSizeError{Lump: r.lump, ElementSize: elemSize, LumpSize: size}
	}

	count := size / elemSize
	out := make([]T, 0, count)
	for i := range count {
		rec := r.sub(elemSize)
		v, err := fn(rec, r.version)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", r.lump, i, err)
		}
		if rec.err != nil {
			return nil, &errs.RecordSizeError{Lump: r.lump, Index: i, ElementSize: elemSize, Consumed: rec.overrun}
		}
		if rec.pos != elemSize && !r.lenient {
			return nil, &errs.RecordSizeError{Lump: r.lump, Index: i, ElementSize: elemSize, Consumed: rec.pos}
		}
		out = append(out, v)
		r.pos += elemSize
	}

	return out, nil
}
