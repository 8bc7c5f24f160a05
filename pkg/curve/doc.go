// Package curve implements the uniform Catmull-Rom spline used to thread a
// tube through an ordered list of control points.
//
// All functions are pure. A spline through n control points has n-1
// segments; segment i interpolates points[i] and points[i+1] and borrows its
// outer neighbors for tangent shaping. The first and last segments use
// phantom neighbors obtained by mirroring the adjacent real point through the
// endpoint (see [ExtrapolateStart] and [ExtrapolateEnd]), so every real
// control point has a defined tangent.
//
// Curves need at least two control points. Callers must not pass fewer.
package curve
