// Package probe polls a just-started notebook server over HTTP until it
// answers, so the launcher can report the server URL once it is reachable.
package probe
