// Package volume decides which voxels lie inside a resolved shape and
// enumerates every member voxel of a filled shape.
//
// Box, cylinder and ellipsoid are enumerated by testing every voxel of a
// padded bounding box. Tubes are enumerated by walking the sampled center
// line and testing the voxels in a cube of the tube radius around each
// sample, so work scales with curve length rather than with the bounding
// box of the whole curve.
package volume
