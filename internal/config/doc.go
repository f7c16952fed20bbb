// Package config defines the format-agnostic run-configuration model for the
// application, along with the Loader interface for reading it from a
// concrete format. The config.Model describes which prior files to load and
// which injection jobs to run; the HCL implementation lives in the hcl
// package.
package config
