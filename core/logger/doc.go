// Package logger captures interpreter events as newline delimited JSON so
// sessions can be audited and summarized after the fact.
package logger
