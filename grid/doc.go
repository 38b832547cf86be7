// Package grid is the geometry toolkit shared by the puzzle solvers:
// integer points in two and three dimensions, a generic rectangular grid,
// rasterized line segments, and flood-fill style region queries.
//
// What:
//
//   - Point / Point3 with arithmetic, Manhattan and Chebyshev distance.
//   - Grid[T] wraps a row-major slice with bounds-checked access and
//     Conn4 / Conn8 neighbor enumeration.
//   - Line rasterizes horizontal, vertical and 45° segments.
//   - Region and Components discover contiguous areas of matching cells.
//
// Complexity:
//
//   - At, Set, InBounds:     O(1).
//   - Region, Components:    O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Line.Points:           O(length).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadPoint, ErrBadLine: malformed literals.
//   - ErrUnsupportedSlope: a line that is not axis-aligned nor diagonal.
//
// Out-of-bounds At / Set panic: they are programmer errors, and solvers are
// expected to guard input-derived coordinates with InBounds or Get.
package grid
