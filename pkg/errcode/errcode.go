// Package errcode enumerates error codes used by gntaxa error values.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Taxonomy dump errors
	DumpNotFoundError
	DumpOpenError
	DumpReadError
	MalformedDumpError
	HierarchyCycleError
	UnknownParentError
	NoRootError
)
