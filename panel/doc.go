// Package panel implements the two panels of the console toolkit: the
// scrollable message panel and the key-by-key command input panel.
//
// Message text is supplied as styled chunks, wrapped into fixed-width
// display lines, and kept in a bounded most-recent-first scrollback ring
// with a paging cursor. The input panel runs a blocking read loop over
// the terminal capability layer and owns the edit buffer, the command
// history ring, and user-registered key bindings.
//
// Everything here is single-threaded: the only suspension point is the
// blocking key read, and all state is mutated from that loop or from
// synchronous calls made by the enclosing window.
package panel
