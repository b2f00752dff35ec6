// Package callsig translates command-line tokens into a call signature:
// ordered positional values plus named keyword values describing a deferred
// invocation of the legacy notebook server.
package callsig
