package iotaxdump

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func DumpNotFoundError(dir string) error {
	msg := "No taxonomy dump in <em>%s</em>, expected at least nodes.dmp and names.dmp"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: taxonomy dump not found in %s", fn, dir),
	}
}

func OpenDumpError(path string, err error) error {
	msg := "Cannot open dump file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open dump file: %w", fn, err),
	}
}

func ReadDumpError(path string, err error) error {
	msg := "Cannot read dump file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read dump file: %w", fn, err),
	}
}

func MalformedDumpError(path string, lineNo int, err error) error {
	msg := "Malformed record in <em>%s</em> at line %d"
	vars := []any{path, lineNo}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedDumpError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: malformed dump %s:%d: %w",
			fn, path, lineNo, err),
	}
}

func CycleError(id uint32) error {
	msg := "Taxonomy hierarchy contains a cycle through taxid %d"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HierarchyCycleError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cyclic parent chain through %d", fn, id),
	}
}

func UnknownParentError(id, parent uint32) error {
	msg := "Taxid %d references unknown parent %d"
	vars := []any{id, parent}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownParentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: taxid %d has unknown parent %d",
			fn, id, parent),
	}
}

func NoRootError() error {
	msg := "Taxonomy dump has no root node (a node that is its own parent)"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoRootError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no root node in dump", fn),
	}
}
