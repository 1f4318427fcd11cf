// Package web holds the page templates and static assets compiled into the
// server binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
)

//go:embed templates/*.html
var TemplateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// IndexTemplate is the name of the servo control page template.
const IndexTemplate = "index.html"

// Static returns the asset tree rooted at static/, as served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// only fails for an invalid path literal
		panic(err)
	}
	return sub
}

// StaticFileSystem serves Static over HTTP without directory listings.
func StaticFileSystem() http.FileSystem {
	return filesOnly{http.FS(Static())}
}

// Templates returns the template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(TemplateFiles, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
