// Package render formats drift reports for the console.
//
// Two renderers share one row model. TableRenderer draws a bordered,
// per-column colored table for interactive terminals; PlainRenderer
// emits aligned plain-text rows for logs and CI. New picks between them
// by probing the terminal the way interactive CLIs do: an explicit
// plain flag, the CI environment variable, TERM=dumb or a non-TTY
// stdout all select the plain form and drop the process color profile
// to ASCII.
package render
