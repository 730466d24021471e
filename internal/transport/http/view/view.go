// Package view 页面模板，编译进二进制
package view

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}

// Templates 解析全部页面；模板名即文件名（如 index.html）
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
