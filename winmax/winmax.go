package winmax

import "cmp"

// entry pairs a stream value with its arrival index, used to detect when
// the value has expired from the trailing window.
type entry[T cmp.Ordered] struct {
	idx uint64 // arrival index in the logical stream
	val T
}

// Tracker reports the maximum of the last w values of a stream.
//
// The deque holds candidate maxima in strictly decreasing value order from
// front to back; the front entry is always the current window maximum.
// The zero value is not usable; construct with New.
type Tracker[T cmp.Ordered] struct {
	w     int
	count uint64     // total samples seen
	dq    []entry[T] // monotonic deque, at most w entries
}

// New constructs a Tracker over a trailing window of w samples.
// Returns ErrBadWindow if w < 1.
func New[T cmp.Ordered](w int) (*Tracker[T], error) {
	if w < 1 {
		return nil, ErrBadWindow
	}

	return &Tracker[T]{
		w:  w,
		dq: make([]entry[T], 0, w),
	}, nil
}

// Advance appends one value to the logical stream, slides the window by
// one position, and returns the maximum of the samples currently in the
// window. full reports whether at least w samples have been seen; callers
// that only want full-window maxima simply ignore results until full is
// true, while callers that accept partial-window maxima can use every
// result.
//
// Steps per sample:
//
//  1. drop entries from the back whose value ≤ v – with v in range they
//     can never again be the window maximum;
//  2. push (index, v) at the back;
//  3. drop entries from the front whose index left the trailing window.
//
// Each entry is pushed and popped at most once, so the amortized cost is
// O(1) per call.
func (t *Tracker[T]) Advance(v T) (max T, full bool) {
	// 1) Evict dominated candidates from the back.
	for n := len(t.dq); n > 0 && t.dq[n-1].val <= v; n = len(t.dq) {
		t.dq = t.dq[:n-1]
	}

	// 2) Admit the new sample.
	t.dq = append(t.dq, entry[T]{idx: t.count, val: v})
	t.count++

	// 3) Expire the front while it sits outside the last w positions.
	for t.dq[0].idx+uint64(t.w) < t.count {
		t.dq = t.dq[1:]
	}

	return t.dq[0].val, t.count >= uint64(t.w)
}

// Max returns the maximum of the current (possibly partial) window without
// advancing the stream. ok is false before the first sample.
//
// Complexity: O(1).
func (t *Tracker[T]) Max() (T, bool) {
	if len(t.dq) == 0 {
		var zero T
		return zero, false
	}

	return t.dq[0].val, true
}

// Full reports whether at least w samples have been seen.
func (t *Tracker[T]) Full() bool { return t.count >= uint64(t.w) }

// Count returns the total number of samples seen so far.
func (t *Tracker[T]) Count() uint64 { return t.count }

// Window returns the fixed window size the tracker was constructed with.
func (t *Tracker[T]) Window() int { return t.w }
