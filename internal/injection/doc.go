// Package injection draws parameter sets from a loaded prior table for
// light-curve injection studies. Draws are seeded and deterministic: the
// same table and seed always produce the same parameter sets, so an
// injection campaign can be reproduced from its recorded seed alone.
package injection
