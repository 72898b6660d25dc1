package brief

// pattern31 is the fixed, compile-time BRIEF sampling-pattern table:
// 256 test pairs (512 points), each pair stored as four int8 coordinates
// (x0, y0, x1, y1) within the [-15, 15] patch window used to steer BRIEF
// — 1024 raw values in all.
//
// The original ORB-SLAM2 bit_pattern_31_ constant (ORBconstants.h) was not
// present in the retrieved original_source for this project — only
// Types.h, Distribution.h, and ORBextractor.h/.cpp were kept (see
// DESIGN.md). This table is a deterministic substitute with the same
// shape (256 pairs spanning the full patch window, fixed for the process
// lifetime) generated once and pinned here as a literal array rather than
// computed at init time, matching the "compile-time constant table"
// contract of a learned BRIEF pattern.
var pattern31 = [1024]int8{
	-1, 1, -9, -10, -11, -5, 6, 3, 6, 3, 0, -8, 12, 1, 3, -8,
	10, 0, 2, -8, 3, 14, 4, -7, -1, 12, -11, -9, 2, 12, 11, 0,
	6, 15, -9, -1, -4, 9, -9, -7, 0, -5, 11, -4, -4, -9, 5, 1,
	6, 3, -4, 13, 5, 11, -4, -10, -4, -3, 8, 5, 3, 4, -8, 1,
	-11, 9, 11, 11, -14, 10, 5, -15, -9, 1, 5, 13, 0, 7, -11, 2,
	8, -15, -15, -12, -8, 3, 1, 4, 10, -5, -9, -6, 3, 0, 8, -5,
	-13, -1, -10, -10, 13, -6, -3, -3, 2, -7, 2, -13, 15, -10, -2, -5,
	13, -8, -3, -4, -1, -13, -15, -3, -9, -10, 7, -15, 6, 7, 6, 1,
	11, 1, 8, 2, 1, 15, 2, 11, 1, -2, -13, 7, -8, -14, 3, -7,
	8, 12, 5, 2, -11, 12, -8, -5, -8, -6, -9, -7, 9, -15, -3, -10,
	-6, -8, -13, 10, -2, -6, -12, -13, -15, 0, 2, 15, 6, 11, -11, -15,
	5, 4, -2, -13, -15, 7, 8, 3, 0, -3, 14, 6, 12, 10, 4, 7,
	1, -13, 11, -14, -12, 2, 11, -8, -9, -11, -6, -1, 9, 15, 6, -11,
	11, 15, -13, -10, 10, -8, 13, 7, 6, -6, 3, 5, -10, -1, -8, -15,
	2, -7, 11, -12, 12, 3, 2, -1, -14, 9, 6, -6, -6, -9, -4, 14,
	0, 8, 0, 6, -9, -9, 9, -11, 11, -15, 12, 2, -8, -3, -11, 10,
	-11, -7, 7, -14, 0, -7, 3, -3, -1, -4, 5, 9, -15, 3, 5, 3,
	4, 10, -7, 4, -5, -5, -11, 7, -4, 1, 2, -14, 11, -13, 7, 14,
	3, -13, 11, 3, -4, 0, -6, -9, 1, 15, 7, -3, 12, 11, 6, 9,
	12, 3, -6, 10, 11, 13, 6, -10, 14, -6, 3, 5, -12, 14, -8, -8,
	-13, 1, -11, -4, -15, -8, -10, 3, 8, -15, -3, 10, 7, 14, 9, -15,
	4, 5, -5, 12, -12, 2, -6, 5, 8, -8, -10, -8, 1, -11, -3, -4,
	5, 5, 11, 0, -13, -13, 0, -7, -8, 4, -4, 4, 2, -8, 2, -3,
	3, 2, -10, -11, 8, -8, 10, 3, 9, 7, -6, -13, -4, -3, -3, -5,
	9, -2, -2, 11, 11, 4, -6, 10, 12, 5, 2, 8, -8, -9, 11, 5,
	12, -5, 4, 13, 1, 10, -1, -3, -2, 9, -1, 6, 6, -10, -8, -5,
	-7, 14, -8, -2, -15, 4, 8, 3, 7, -11, 11, -5, 1, -2, -3, -5,
	9, -10, -7, -12, -7, 10, 12, -13, 5, 6, -9, 12, -5, 12, -7, -1,
	-7, 11, -1, -3, -10, 1, 11, 11, 10, 4, 2, -7, -13, 7, -2, 8,
	-4, 13, 1, 6, -1, -2, -5, -8, 6, 15, 9, -7, -12, 6, 12, -10,
	8, -14, 7, 8, -7, 3, -15, 12, -1, 7, 4, -7, 6, 6, -6, -4,
	4, 11, -13, 12, -15, -6, 11, -7, 15, 14, -1, -1, -4, 11, -9, 5,
	-2, 8, -8, 1, -8, 0, -4, 15, 4, 4, -7, 9, 10, 11, -12, 14,
	-13, 12, -4, -13, -12, 3, 15, 5, 9, -14, -4, 9, -4, 9, -7, -2,
	11, -13, 3, 10, -12, 2, 7, 14, 13, -15, 7, -13, -9, 10, -10, 10,
	-10, 15, -9, 10, -4, -5, -11, -5, 3, -7, 1, -11, 10, 14, 1, 5,
	11, 8, -12, 1, 7, -2, 1, -8, 1, 8, 5, 10, 7, -6, 8, -10,
	-3, -8, -7, -8, 1, 14, -14, -3, 9, 11, 10, -4, 1, -6, 14, -9,
	-7, -5, -6, -13, 12, -15, 3, 12, 15, 1, 5, -11, -1, -11, -13, 12,
	-12, 1, 13, -10, -13, 3, -3, 11, -4, -13, 15, -9, -8, 7, -10, -9,
	-14, 10, 11, 0, 2, -4, -9, -4, 5, 8, 2, -10, 14, -9, 10, -8,
	4, 15, 12, 13, 5, -7, 5, -13, -8, -1, 2, 14, -10, 5, -2, 13,
	13, 6, 0, 0, 14, -11, 5, -4, -10, 5, 3, -7, -5, 1, 5, 11,
	6, -14, -6, -6, 13, 3, -12, -2, 10, -4, 15, -8, 6, 15, 9, 1,
	10, 3, -5, 7, 4, -4, -1, -3, 9, 5, 4, -6, 6, 8, -9, 8,
	13, -9, 4, -8, 10, -14, -2, 10, 14, -1, 8, -15, -3, -1, 15, 4,
	0, 2, -10, 5, -9, -9, -8, -7, -1, 12, 9, -13, 0, 5, -10, 4,
	14, 12, 5, 12, -7, -6, -9, -3, -2, 15, -10, -5, 4, 8, -14, -3,
	-6, 7, -6, 1, -9, 4, 13, 10, 4, 2, 6, -9, 11, -12, -13, -7,
	6, -10, 3, -8, -11, -10, 15, -3, 5, -10, 5, 15, -6, -1, 0, 8,
	9, 15, 1, -6, -7, 5, 15, -7, 2, -9, 2, 9, 9, -13, -9, -12,
	-8, 6, 14, 9, 15, 14, 6, 12, 0, 15, -6, -1, -10, 1, -2, -10,
	14, -12, 8, -6, -9, 1, -11, -9, -9, -1, 7, -5, -6, -2, 10, -9,
	12, -1, -7, -7, 4, 13, 13, 0, 14, -9, -7, 12, -3, 15, -8, 1,
	10, 0, -14, -15, 6, 4, -6, -12, 8, -12, 3, -8, 12, 0, -5, 12,
	5, 10, -12, 11, 6, -11, -9, 6, -12, -14, -15, -11, -9, 1, -1, -15,
	5, -5, -11, -1, 2, 4, 8, 0, -6, 14, 2, -15, 12, 12, 8, -15,
	13, 9, -4, -12, -15, -3, -15, -10, 10, 2, -7, -15, 8, -7, 8, -4,
	1, -12, 10, -14, 12, -8, 13, -11, 12, 4, -10, 4, -14, 5, 5, -8,
	-9, -13, -11, -1, 15, 14, 2, 14, -12, 0, -2, 14, 1, -10, 8, -7,
	-15, -11, 12, 9, -10, -11, -1, 8, -9, 1, 8, -2, -4, 13, -7, 1,
	-15, 10, 14, 9, -7, -8, -3, 1, -14, -8, 14, -9, 15, -5, 7, -12,
	-3, 13, 11, -1, 3, 1, -11, 15, 14, 8, 15, -4, 0, -6, -9, -1,
	-5, -13, 5, -8, 10, 11, -1, -12, 6, -6, -15, 2, 12, -8, -10, 1,
}
