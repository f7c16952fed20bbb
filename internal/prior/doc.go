// Package prior defines the format-agnostic model for a set of prior
// declarations: named parameters bound either to a fixed constant or to a
// bounded probability distribution. The model is the single source of truth
// for the injection generator and the serving layer. Concrete parsers, such
// as the bilby prior-file loader, live in separate packages and produce a
// *prior.Table.
package prior
