// Package detection implements the change-detection core: computing a
// binary change mask between two co-registered aerial images and
// classifying the changed regions.
//
// # Pipeline
//
// Detection runs in two stages:
//
//  1. DetectChanges compares the two images in CIE Lab space. Per-channel
//     absolute differences are combined into one scalar map using fixed
//     weights (0.5 lightness, 0.25 per chroma channel; brightness shifts
//     dominate perceptible land-cover change), binarized against a
//     threshold, and cleaned up with one morphological opening and one
//     closing pass (5x5 neighborhood).
//
//  2. Classify extracts the connected foreground components of the mask,
//     drops components below a minimum area, and assigns each surviving
//     region a Category by comparing regional mean HSV statistics between
//     the two source images.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. Bounding
// boxes use inclusive top-left and exclusive bottom-right.
//
// # Determinism
//
// Classified regions are returned sorted by bounding-box top-left
// coordinate (Y first, then X), so output order is reproducible and does
// not depend on component discovery order.
//
// # Policy Constants
//
// The fixed policy values of the detector (binarization threshold,
// morphological kernel size, minimum region area) are exposed as named
// constants (DefaultThreshold, MorphKernelSize, DefaultMinRegionArea) with
// documented defaults rather than buried literals.
package detection
