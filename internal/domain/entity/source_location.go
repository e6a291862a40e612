package entity

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// SourceLocation identifies the call site of a log call
type SourceLocation struct {
	File     string `json:"file"`
	Function string `json:"function"`
	Line     int    `json:"line"`
}

// CallerLocation captures the location skip frames above its caller
func CallerLocation(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SourceLocation{}
	}
	loc := SourceLocation{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = shortFunctionName(fn.Name())
	}
	return loc
}

// IsZero reports whether no location was captured
func (l SourceLocation) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// String renders the location as "file:line function"
func (l SourceLocation) String() string {
	if l.IsZero() {
		return ""
	}
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d %s", l.File, l.Line, l.Function)
}

// shortFunctionName strips the import path: "a/b/pkg.(*T).M" -> "(*T).M"
func shortFunctionName(name string) string {
	if slash := strings.LastIndexByte(name, '/'); slash >= 0 {
		name = name[slash+1:]
	}
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return name
}
