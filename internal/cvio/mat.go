// Package cvio isolates every use of gocv.Mat to the CLI's image
// decode/encode and overlay-drawing boundary, adapted from the teacher
// application's refcounted safe.Mat wrapper. The detection library
// itself (package boundary and internal/imaging) never touches gocv:
// its filters define their own border and sample-counting rules, which
// a CV library's built-in kernels would not reproduce bit-for-bit.
package cvio

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"
)

// Mat is a close-once wrapper around gocv.Mat with a single owner (it
// keeps no reference count). A finalizer guards against a caller forgetting Close, matching the
// teacher's safe.Mat leak-prevention strategy.
type Mat struct {
	mat     gocv.Mat
	mu      sync.Mutex
	isValid int32
	id      uint64
	tag     string
}

var nextMatID uint64

// Wrap takes ownership of an existing gocv.Mat.
func Wrap(m gocv.Mat, tag string) *Mat {
	sm := &Mat{
		mat:     m,
		isValid: 1,
		id:      atomic.AddUint64(&nextMatID, 1),
		tag:     tag,
	}
	runtime.SetFinalizer(sm, (*Mat).finalize)
	return sm
}

// Raw returns the underlying Mat for one-shot gocv calls. The caller
// must not Close it directly; use Mat.Close instead.
func (m *Mat) Raw() gocv.Mat {
	return m.mat
}

// Empty reports whether the Mat holds no data.
func (m *Mat) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return atomic.LoadInt32(&m.isValid) == 0 || m.mat.Empty()
}

// Close releases the underlying Mat. Safe to call more than once.
func (m *Mat) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !atomic.CompareAndSwapInt32(&m.isValid, 1, 0) {
		return nil
	}
	runtime.SetFinalizer(m, nil)
	return m.mat.Close()
}

func (m *Mat) finalize() {
	if atomic.LoadInt32(&m.isValid) == 1 {
		_ = m.Close()
	}
}

func (m *Mat) String() string {
	return fmt.Sprintf("cvio.Mat#%d(%s)", m.id, m.tag)
}
