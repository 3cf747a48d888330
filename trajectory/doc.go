// Package trajectory ties the trajinfer stages into one query surface.
//
// A Session is built once per dataset: it validates the soft cluster
// memberships, aggregates the transition graph and then never changes.
// Every call to Session.Infer is an independent, read-only query:
//
//  1. prune the graph to its maximum spanning forest (no-loop sessions);
//  2. drop edges whose weight is <= cutoff (default 0.01);
//  3. keep the connected component of the root;
//  4. build the milestone network with Dijkstra from the root;
//  5. scale the selected edge weights to display scores;
//  6. project w_tilde onto the selected edges;
//  7. assign pseudotime.
//
// A graph without edges skips steps 1 to 5: every cell is projected onto
// its argmax cluster and only cells one-hot at the root get a pseudotime.
// A root without incident edges after thresholding is not an error; the
// result carries dijkstra.ErrDegenerateInput in Warnings.
//
// Infer is idempotent and safe for concurrent use on one Session.
// NewSessionContext and InferContext attach the builder and query spans to
// the caller's trace; Infer and NewSession run under context.Background.
package trajectory
