// Package orb extracts scale- and rotation-aware ORB (Oriented FAST and
// rotated BRIEF) keypoints and 256-bit binary descriptors from a
// single-channel 8-bit grayscale image.
//
// It is a front-end feature layer for visual SLAM / visual-odometry
// pipelines: given one frame it returns a bounded number of well-spread
// keypoints and their descriptors, built from a scale-space pyramid, a
// tiled FAST-9/16 corner detector, a choice of spatially-uniform keypoint
// distribution strategies, intensity-centroid orientation, and steered
// BRIEF descriptors over a fixed 256-pair pattern.
//
// Basic usage:
//
//	ex := orb.NewExtractor(orb.DefaultConfig())
//	kps, desc, err := ex.ExtractGray(gray, true)
//
// A single Extractor is not safe for concurrent Extract calls; pool
// instances for throughput.
package orb
