// Package hcl loads the launcher's HCL defaults file and translates it into
// the format-agnostic config model.
package hcl
