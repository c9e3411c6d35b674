package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

//go:embed templates/*.html
var templateFS embed.FS

// page names, each rendered from base.html plus templates/<name>.html
const (
	PageHome          = "home"
	PageProjects      = "projects"
	PageProjectDetail = "project_detail"
	PageBlog          = "blog"
	PageBlogDetail    = "blog_detail"
	PageAbout         = "about"
	PageContact       = "contact"
	PageNotFound      = "404"
	PageError         = "error"
)

var pageNames = []string{
	PageHome, PageProjects, PageProjectDetail, PageBlog, PageBlogDetail,
	PageAbout, PageContact, PageNotFound, PageError,
}

// Renderer executes the site's HTML templates
type Renderer struct {
	pages  map[string]*template.Template
	media  services.MediaResolver
	logger zerolog.Logger
}

func NewRenderer(media services.MediaResolver) (*Renderer, error) {
	r := &Renderer{
		pages:  make(map[string]*template.Template, len(pageNames)),
		media:  media,
		logger: log.With().Str("component", "renderer").Logger(),
	}

	funcs := template.FuncMap{
		"markdown": r.markdown,
		"media":    r.mediaURL,
		"date":     formatDate,
	}
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page with data to w. The page is executed into a buffer
// first so a template error never leaves a half written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) markdown(source string) template.HTML {
	out, err := RenderMarkdown(source)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to render markdown")
		return template.HTML(template.HTMLEscapeString(source))
	}
	return out
}

func (r *Renderer) mediaURL(key string) string {
	if r.media == nil {
		return key
	}
	url, err := r.media.URL(context.Background(), key)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("failed to resolve media url")
		return ""
	}
	return url
}

const displayDate = "January 2, 2006"

// formatDate accepts time and date values, nil renders as an empty string
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(displayDate)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(displayDate)
	case *datatypes.Date:
		if t == nil {
			return ""
		}
		return time.Time(*t).Format(displayDate)
	default:
		return ""
	}
}
