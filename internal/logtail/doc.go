// Package logtail reads the end of the poziverse log file and formats its
// JSON entries for a terminal.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the file grows. Format turns one zap JSON line into
//
//	2026-10-19 09:14:03 INFO  catalog loaded hidden=0 path=built-in projects=4
//
// and passes anything that is not a JSON entry through unchanged.
package logtail
