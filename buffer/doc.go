// Package buffer implements the document model: an ordered list of lines
// addressed by zero-based line index and codepoint column.
//
// The buffer never holds fewer than one line; an empty document is a single
// empty line. Newlines are implicit separators between lines and are never
// stored inside line content.
//
// Columns count codepoints, not grapheme clusters, so an edit can land
// inside a multi-codepoint cluster. Cluster-aware measurement lives in the
// metrics providers; the model itself stays codepoint-addressed.
//
// Every mutation bumps a document version counter, and each line carries the
// version of the mutation that last touched it. Layout caches key on the line
// stamps to reshape only what changed.
package buffer
