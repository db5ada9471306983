// Package shell implements the interactive menu of jot.
//
// The loop is synchronous: it prints the menu, blocks on one line of input,
// dispatches, and repeats until the user exits or input ends. Failures of the
// notebook are reported to the user and never end the loop.
package shell
