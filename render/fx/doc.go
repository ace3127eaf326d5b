// Package fx is the fixed-point math kernel of the renderer.
//
// Two formats are in use:
//
//	Fixed   .8  fixed point, general geometry (positions, normals, matrices)
//	Fixed12 .12 fixed point, time values and angles
//
// Conversions between them are plain shifts. Arithmetic is wraparound; the
// kernel never saturates and overflow is the caller's concern.
//
// Matrices are stored row after row but follow the column-vector convention
// throughout: v' = M * v. The basis vectors occupy columns 0-2 and the
// translation occupies column 3.
package fx
