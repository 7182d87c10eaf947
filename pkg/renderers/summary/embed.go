package summary

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// TemplatesFS returns the built-in template bundle.
func TemplatesFS() fs.FS {
	return embedded
}
