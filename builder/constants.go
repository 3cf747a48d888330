// Package builder defines shared constants used by the graph builder.
package builder

//-----------------------------------------------------------------------------
// Aggregation Method Names
//-----------------------------------------------------------------------------

const (
	// MethodMean averages, over qualifying cells, p(i,j) / (p(i,i)+p(i,j)+p(j,j)).
	MethodMean = "mean"
	// MethodModifiedMean is Σ p(i,j) / Σ (p(i,i)+p(i,j)+p(j,j)) over qualifying cells.
	MethodModifiedMean = "modified_mean"
	// MethodMAP is the share of hard assignments to (i,j) among those to (i,i), (i,j), (j,j).
	MethodMAP = "map"
	// MethodModifiedMAP divides hard assignments to (i,j) by cells with w̃ > 0.5 on i or j.
	MethodModifiedMAP = "modified_map"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultThreshold is the minimum combined evidence for a cell to qualify.
	DefaultThreshold = 0.5
	// DefaultMethod is the aggregation used when none is chosen.
	DefaultMethod = MethodMean
	// pureMembership is the w̃ level above which a cell counts towards a pure cluster.
	pureMembership = 0.5
	// mapEpsilon keeps the modified_map denominator positive.
	mapEpsilon = 1e-16
)
