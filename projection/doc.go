// Package projection re-projects each cell's soft cluster assignment w̃
// onto the trajectory graph.
//
// A cell either snaps to its strongest cluster (a one-hot row) or sits on
// the candidate edge (a,b) that best explains it, with the deficit
// 1−w_a−w_b split equally between the two endpoints so they sum to 1. The
// choice minimizes the squared L2 distance between w̃ and its projection;
// an edge is used only when it is strictly closer.
//
// The resulting matrix W (cells × K) satisfies: every row has at most two
// non-zero entries, and two entries always sum to 1.
package projection
