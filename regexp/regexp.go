package regexp

import (
	"fmt"
	stdlib "regexp"

	gore2 "github.com/wasilibs/go-re2"
)

// engine is an internal interface satisfied by both *stdlib.Regexp and *gore2.Regexp.
type engine interface {
	MatchString(s string) bool
	FindStringSubmatch(s string) []string
	NumSubexp() int
	String() string
}

// Regexp wraps a compiled regular expression. It is a concrete struct
// so that *Regexp works as a normal pointer (not pointer-to-interface).
type Regexp struct {
	e      engine
	engine string
}

func (r *Regexp) MatchString(s string) bool {
	return r.e.MatchString(s)
}
func (r *Regexp) FindStringSubmatch(s string) []string {
	return r.e.FindStringSubmatch(s)
}
func (r *Regexp) NumSubexp() int {
	return r.e.NumSubexp()
}
func (r *Regexp) String() string {
	return r.e.String()
}

// Engine reports which engine compiled r.
func (r *Regexp) Engine() string {
	return r.engine
}

const (
	EngineStdlib = "stdlib"
	EngineRE2    = "re2"
)

var currentEngine = EngineStdlib

// Version returns the name of the active regex engine.
func Version() string { return currentEngine }

// SetEngine selects the regex engine used by subsequent Compile and MustCompile calls.
func SetEngine(name string) {
	switch name {
	case EngineStdlib, EngineRE2:
		currentEngine = name
	default:
		panic("regexp: unknown engine: " + name)
	}
}

// ValidEngine reports whether name is a known engine.
func ValidEngine(name string) bool {
	return name == EngineStdlib || name == EngineRE2
}

// Compile compiles a regular expression using the currently selected engine.
func Compile(str string) (*Regexp, error) {
	var (
		impl engine
		err  error
	)
	if currentEngine == EngineRE2 {
		impl, err = gore2.Compile(str)
	} else {
		impl, err = stdlib.Compile(str)
	}
	if err != nil {
		return nil, fmt.Errorf("regexp: compile %q: %w", str, err)
	}
	return &Regexp{e: impl, engine: currentEngine}, nil
}

// MustCompile compiles a regular expression using the currently selected engine.
// It panics with the offending pattern if the expression cannot be parsed.
func MustCompile(str string) *Regexp {
	r, err := Compile(str)
	if err != nil {
		panic(err.Error())
	}
	return r
}
