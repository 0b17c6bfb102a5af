// Package util contains small helpers used throughout kumo.
package util

import (
	"flag"
	"strings"
)

// Flag registers value with the default flag set and returns it.
func Flag[T flag.Value](name string, value T, usage string) T {
	flag.Var(value, name, usage)
	return value
}

type stringsFlag []string

func (s stringsFlag) String() string {
	return strings.Join(s, " ")
}

func (s *stringsFlag) Set(v string) error {
	*s = strings.Fields(v)
	return nil
}

// StringsFlag defines a flag whose value is split into fields on
// whitespace, such as a command and its arguments.
func StringsFlag(name string, value []string, usage string) *[]string {
	return (*[]string)(Flag(name, (*stringsFlag)(&value), usage))
}
