// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (stacks, responsive columns, rules)
// - the exhibit's presentational components (comparison card, principle row, callout)
//
// Not allowed here:
// - key handling, viewport state, configuration, or page content
package widgets
