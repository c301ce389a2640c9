package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/quizdesk/internal/console"
	"github.com/xxxsen/quizdesk/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"unixTime": func(ts int64) string {
		return time.Unix(ts, 0).Format("15:04:05")
	},
}).ParseFS(templatesFS, "templates/index.html"))

type PageHandler struct {
	console *console.Console
	baseURL string
}

func NewPageHandler(c *console.Console, baseURL string) *PageHandler {
	return &PageHandler{console: c, baseURL: baseURL}
}

type pageData struct {
	BaseURL      string
	Drafts       model.Drafts
	HashtagsText string
	Status       model.BackendStatus
	History      []model.Outcome
}

func (h *PageHandler) Index(c *gin.Context) {
	drafts := h.console.Drafts()
	data := pageData{
		BaseURL:      h.baseURL,
		Drafts:       drafts,
		HashtagsText: drafts.Card.HashtagsText(),
		Status:       h.console.Status(),
		History:      h.console.History(),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
