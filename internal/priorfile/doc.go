// Package priorfile parses bilby-style prior declaration files into the
// format-agnostic prior.Table model. The format is line-oriented: each
// non-comment line binds a parameter name to either a bare numeric constant
// or a distribution constructor call with keyword arguments, e.g.
//
//	ksiN = 1.0
//	thetaCore = Uniform(minimum=0.01, maximum=np.pi/12., latex_label='$\\theta_c$')
//
// The right-hand side is a restricted mini-language evaluated by an explicit
// hand-written lexer and recursive-descent parser. Only numeric literals,
// basic arithmetic, a whitelist of spellings of pi, string literals, and
// calls to the closed set of distribution families are legal; there is no
// general expression evaluation. Loading is fail-fast: the first malformed
// line aborts the whole load, since an inference run must never proceed with
// a partial parameter set.
package priorfile
