package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// Form accumulates a multipart/form-data payload for the upload
// endpoints (register, profile update, recipe create/update). The
// content type carries the writer's boundary and is never forced to
// JSON.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// AddField appends a text field.
func (f *Form) AddField(name, value string) *Form {
	if f.err == nil {
		f.err = f.writer.WriteField(name, value)
	}
	return f
}

// AddInt appends an integer field.
func (f *Form) AddInt(name string, value int) *Form {
	return f.AddField(name, strconv.Itoa(value))
}

// AddInts appends one field per value, the repeated-key convention the
// API expects for arrays (e.g. categoriesIds).
func (f *Form) AddInts(name string, values []int) *Form {
	for _, v := range values {
		f.AddInt(name, v)
	}
	return f
}

// AddFile appends a file part, streaming from r.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	if f.err != nil {
		return f
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	if _, err := io.Copy(part, r); err != nil {
		f.err = err
	}
	return f
}

// build finalizes the form and returns the body and content type.
func (f *Form) build() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("build multipart form: %w", f.err)
	}
	if err := f.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart form: %w", err)
	}
	return &f.buf, f.writer.FormDataContentType(), nil
}
