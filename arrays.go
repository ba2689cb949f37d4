package eriplots

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOutOfRange is returned when an axes index is outside its array.
var ErrIndexOutOfRange = errors.New("eriplots: axes index out of range")

// End is a slice bound meaning "up to the end".
const End = math.MaxInt

// AxesSet is what Subplots returns: a single *Axes, an *AxesArray1D or an
// *AxesArray2D.
type AxesSet interface {
	// Ndim is 0 for a single axes, 1 or 2 for arrays.
	Ndim() int

	// Shape is empty for a single axes.
	Shape() []int

	// Len is the total number of axes.
	Len() int

	// Flat returns every axes in row-major order.
	Flat() []*Axes
}

var (
	_ AxesSet = (*Axes)(nil)
	_ AxesSet = (*AxesArray1D)(nil)
	_ AxesSet = (*AxesArray2D)(nil)
)

func (a *Axes) Ndim() int     { return 0 }
func (a *Axes) Shape() []int  { return []int{} }
func (a *Axes) Len() int      { return 1 }
func (a *Axes) Flat() []*Axes { return []*Axes{a} }

// normIndex resolves a possibly negative index against n.
func normIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, n)
	}
	return j, nil
}

// sliceBounds clamps [lo, hi) the way sequence slicing does: negative
// bounds count from the end, out-of-range bounds are clipped, and an
// inverted range is empty.
func sliceBounds(lo, hi, n int) (int, int) {
	clip := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi = clip(lo), clip(hi)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// AxesArray1D is a one-dimensional array of axes.
type AxesArray1D struct {
	axes []*Axes
}

// NewAxesArray1D wraps axes in an array. The slice is not copied.
func NewAxesArray1D(axes []*Axes) *AxesArray1D {
	return &AxesArray1D{axes: axes}
}

func (a *AxesArray1D) Ndim() int    { return 1 }
func (a *AxesArray1D) Shape() []int { return []int{len(a.axes)} }
func (a *AxesArray1D) Len() int     { return len(a.axes) }

// Flat returns a copy of the axes.
func (a *AxesArray1D) Flat() []*Axes {
	return append([]*Axes(nil), a.axes...)
}

// Index returns the i-th axes. Negative indexes count from the end.
func (a *AxesArray1D) Index(i int) (*Axes, error) {
	i, err := normIndex(i, len(a.axes))
	if err != nil {
		return nil, err
	}
	return a.axes[i], nil
}

// At is Index for indexes known to be valid. It panics otherwise.
func (a *AxesArray1D) At(i int) *Axes {
	ax, err := a.Index(i)
	if err != nil {
		panic(err)
	}
	return ax
}

// Slice returns the axes in [lo, hi) as a new array sharing the axes.
// Use End as hi to slice to the end.
func (a *AxesArray1D) Slice(lo, hi int) *AxesArray1D {
	lo, hi = sliceBounds(lo, hi, len(a.axes))
	return &AxesArray1D{axes: a.axes[lo:hi:hi]}
}

// AxesArray2D is a row-major two-dimensional array of axes.
type AxesArray2D struct {
	rows, cols int
	axes       []*Axes
}

// NewAxesArray2D wraps a rectangular grid of axes.
func NewAxesArray2D(grid [][]*Axes) (*AxesArray2D, error) {
	a := &AxesArray2D{rows: len(grid)}
	if a.rows > 0 {
		a.cols = len(grid[0])
	}
	for i, row := range grid {
		if len(row) != a.cols {
			return nil, fmt.Errorf("eriplots: row %d has %d axes, want %d", i, len(row), a.cols)
		}
		a.axes = append(a.axes, row...)
	}
	return a, nil
}

func (a *AxesArray2D) Ndim() int    { return 2 }
func (a *AxesArray2D) Shape() []int { return []int{a.rows, a.cols} }
func (a *AxesArray2D) Len() int     { return len(a.axes) }

// Flat returns a copy of the axes in row-major order.
func (a *AxesArray2D) Flat() []*Axes {
	return append([]*Axes(nil), a.axes...)
}

// Flatten returns the axes as a one-dimensional array in row-major order.
func (a *AxesArray2D) Flatten() *AxesArray1D {
	return &AxesArray1D{axes: a.Flat()}
}

// Index returns the axes at row i, column j. Negative indexes count from
// the end.
func (a *AxesArray2D) Index(i, j int) (*Axes, error) {
	i, err := normIndex(i, a.rows)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	j, err = normIndex(j, a.cols)
	if err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	return a.axes[i*a.cols+j], nil
}

// At is Index for indexes known to be valid. It panics otherwise.
func (a *AxesArray2D) At(i, j int) *Axes {
	ax, err := a.Index(i, j)
	if err != nil {
		panic(err)
	}
	return ax
}

// Row returns row i. It panics if i is out of range.
func (a *AxesArray2D) Row(i int) *AxesArray1D {
	i, err := normIndex(i, a.rows)
	if err != nil {
		panic(err)
	}
	out := make([]*Axes, a.cols)
	copy(out, a.axes[i*a.cols:])
	return &AxesArray1D{axes: out}
}

// Col returns column j. It panics if j is out of range.
func (a *AxesArray2D) Col(j int) *AxesArray1D {
	j, err := normIndex(j, a.cols)
	if err != nil {
		panic(err)
	}
	out := make([]*Axes, a.rows)
	for i := range a.rows {
		out[i] = a.axes[i*a.cols+j]
	}
	return &AxesArray1D{axes: out}
}

// Slice returns rows [r0, r1) and columns [c0, c1) as a new array. Bounds
// follow Slice of AxesArray1D.
func (a *AxesArray2D) Slice(r0, r1, c0, c1 int) *AxesArray2D {
	r0, r1 = sliceBounds(r0, r1, a.rows)
	c0, c1 = sliceBounds(c0, c1, a.cols)
	out := &AxesArray2D{rows: r1 - r0, cols: c1 - c0}
	for i := r0; i < r1; i++ {
		out.axes = append(out.axes, a.axes[i*a.cols+c0:i*a.cols+c1]...)
	}
	return out
}
