package templating

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path"
	"sync"

	"github.com/melisma/audiotensor/common/config"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

type templates struct {
	cached map[string]*template.Template
}

var instance *templates
var singletonLock = &sync.Once{}

func getInstance() *templates {
	if instance == nil {
		singletonLock.Do(func() {
			instance = &templates{
				cached: make(map[string]*template.Template),
			}
		})
	}
	return instance
}

// GetTemplate loads a named template from the configured templates directory,
// falling back to the embedded defaults. Parsed templates are cached.
func GetTemplate(name string) (*template.Template, error) {
	i := getInstance()
	if v, ok := i.cached[name]; ok {
		return v, nil
	}

	fname := fmt.Sprintf("%s.html", name)
	if config.Runtime.TemplatesPath != "" {
		tmplPath := path.Join(config.Runtime.TemplatesPath, fname)
		if _, err := os.Stat(tmplPath); err == nil {
			t, err := template.New(fname).ParseFiles(tmplPath)
			if err != nil {
				return nil, err
			}
			i.cached[name] = t
			return t, nil
		}
	}

	t, err := template.New(fname).ParseFS(defaultTemplates, "templates/"+fname)
	if err != nil {
		return nil, err
	}

	i.cached[name] = t
	return t, nil
}
