// Package voxel defines the discrete data model shared by the shape engine:
// integer voxel coordinates, unordered voxel sets, layer filters and
// inclusive bounding corners.
package voxel
