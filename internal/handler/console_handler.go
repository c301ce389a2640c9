package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/quizdesk/internal/console"
	"github.com/xxxsen/quizdesk/internal/model"
	appErr "github.com/xxxsen/quizdesk/internal/pkg/errors"
	"github.com/xxxsen/quizdesk/internal/pkg/response"
)

type ConsoleHandler struct {
	console *console.Console
}

func NewConsoleHandler(c *console.Console) *ConsoleHandler {
	return &ConsoleHandler{console: c}
}

type draftsResponse struct {
	model.Drafts
	HashtagsText string `json:"hashtagsText"`
}

type actionResponse struct {
	model.Outcome
	Code string `json:"code"`
}

type codeRequest struct {
	Code *string `json:"code"`
}

type cardRequest struct {
	Number       int       `json:"number"`
	Description  string    `json:"description"`
	Hashtags     *[]string `json:"hashtags"`
	HashtagsText *string   `json:"hashtagsText"`
	SetID        int       `json:"setId"`
}

func (h *ConsoleHandler) Drafts(c *gin.Context) {
	drafts := h.console.Drafts()
	response.Success(c, draftsResponse{Drafts: drafts, HashtagsText: drafts.Card.HashtagsText()})
}

func (h *ConsoleHandler) SetCode(c *gin.Context) {
	var req codeRequest
	if _, err := bindOptionalJSON(c, &req); err != nil {
		handleError(c, err)
		return
	}
	if req.Code == nil {
		handleError(c, fmt.Errorf("code required: %w", appErr.ErrInvalid))
		return
	}
	h.console.SetCode(*req.Code)
	response.Success(c, gin.H{"code": h.console.Code()})
}

func (h *ConsoleHandler) History(c *gin.Context) {
	response.Success(c, h.console.History())
}

func (h *ConsoleHandler) Status(c *gin.Context) {
	response.Success(c, h.console.Status())
}

func (h *ConsoleHandler) RegisterAdmin(c *gin.Context) {
	var req model.AdminCredentials
	ok, err := bindOptionalJSON(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	if ok {
		h.console.SetAdmin(req)
	}
	h.respond(c, h.console.RegisterAdmin(c.Request.Context()))
}

func (h *ConsoleHandler) CreateCategory(c *gin.Context) {
	var req model.CategoryDraft
	ok, err := bindOptionalJSON(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	if ok {
		h.console.SetCategory(req)
	}
	h.respond(c, h.console.CreateCategory(c.Request.Context()))
}

func (h *ConsoleHandler) CreateSet(c *gin.Context) {
	var req model.SetDraft
	ok, err := bindOptionalJSON(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	if ok {
		h.console.SetSet(req)
	}
	h.respond(c, h.console.CreateSet(c.Request.Context()))
}

// CreateCard takes hashtags either as a list or as the comma-space display
// text. The text wins when both are sent.
func (h *ConsoleHandler) CreateCard(c *gin.Context) {
	var req cardRequest
	ok, err := bindOptionalJSON(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	if ok {
		card := model.CardDraft{
			Number:      req.Number,
			Description: req.Description,
			SetID:       req.SetID,
		}
		switch {
		case req.HashtagsText != nil:
			card.SetHashtagsText(*req.HashtagsText)
		case req.Hashtags != nil:
			card.Hashtags = *req.Hashtags
		}
		h.console.SetCard(card)
	}
	h.respond(c, h.console.CreateCard(c.Request.Context()))
}

func (h *ConsoleHandler) StartGame(c *gin.Context) {
	var req model.GameDraft
	ok, err := bindOptionalJSON(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	if ok {
		h.console.SetGame(req)
	}
	h.respond(c, h.console.StartGame(c.Request.Context()))
}

func (h *ConsoleHandler) GenerateQR(c *gin.Context) {
	var req codeRequest
	if _, err := bindOptionalJSON(c, &req); err != nil {
		handleError(c, err)
		return
	}
	if req.Code != nil {
		h.console.SetCode(*req.Code)
	}
	h.respond(c, h.console.GenerateQR(c.Request.Context()))
}

// respond reports backend failures as a successful console response; the
// failure is part of the outcome.
func (h *ConsoleHandler) respond(c *gin.Context, outcome model.Outcome) {
	response.Success(c, actionResponse{Outcome: outcome, Code: h.console.Code()})
}
