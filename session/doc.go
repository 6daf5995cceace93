// Package session composes the buffer, cursor, undo, autoformat, and layout
// packages into the single editing surface front-ends call.
//
// A Session is the sole writer of its buffer. Every mutating operation runs
// synchronously, applies fully or not at all, records itself with the undo
// engine, and then notifies subscribers with the affected line range. Hosts
// feed it input events and a pluggable metrics provider; painting, key
// capture, and persistence stay outside.
package session
