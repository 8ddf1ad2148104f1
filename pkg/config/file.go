// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"io/fs"
	"sync"
)

// FromFile returns a [Document] read from the file at path in fsys. The
// file is rendered as a text template, see [RenderTextTemplate], and
// decoded in the [Format] its extension names.
//
// The file is not opened until the source is applied.
func FromFile(fsys fs.FS, path string, opts ...RenderTextTemplateOption) Document {
	return Document{
		r:      RenderTextTemplate(NewFileReader(fsys, path), opts...),
		format: FormatOf(path),
	}
}

// FileReader is an io.Reader that opens its file on the first call to Read.
type FileReader struct {
	fsys fs.FS
	path string

	openOnce sync.Once
	openErr  error
	file     fs.File
}

// NewFileReader configures a FileReader for the file at path in fsys.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		fsys: fsys,
		path: path,
	}
}

// Read implements the [io.Reader] interface. A failure to open the file
// is returned from every call.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fsys.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	return r.file.Read(b)
}

// Close implements the [io.Closer] interface. It is a no-op if the file
// was never opened.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	f := r.file
	r.file = nil
	return f.Close()
}

var _ io.ReadCloser = (*FileReader)(nil)
