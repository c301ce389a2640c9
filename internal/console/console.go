package console

import (
	"context"
	"sync"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/quizdesk/internal/client"
	"github.com/xxxsen/quizdesk/internal/history"
	"github.com/xxxsen/quizdesk/internal/model"
)

// API is the backend surface the console drives.
type API interface {
	RegisterAdmin(ctx context.Context, admin model.AdminCredentials) (*client.Reply, error)
	CreateCategory(ctx context.Context, category model.CategoryDraft) (*client.Reply, error)
	CreateSet(ctx context.Context, set model.SetDraft) (*client.Reply, error)
	CreateCard(ctx context.Context, card model.CardDraft) (*client.Reply, error)
	StartGame(ctx context.Context, game model.GameDraft) (*client.Reply, error)
	GenerateQR(ctx context.Context, code string) (*client.Reply, error)
}

// Console holds the operator's drafts and runs one backend call per action.
// The lock guards drafts and status only and is never held across a call.
type Console struct {
	api     API
	history *history.Recorder

	mu     sync.Mutex
	drafts model.Drafts
	status model.BackendStatus
}

func New(api API, recorder *history.Recorder) *Console {
	return &Console{
		api:     api,
		history: recorder,
		drafts:  model.DefaultDrafts(),
	}
}

func (c *Console) Drafts() model.Drafts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts.Clone()
}

func (c *Console) SetAdmin(admin model.AdminCredentials) {
	c.mu.Lock()
	c.drafts.Admin = admin
	c.mu.Unlock()
}

func (c *Console) SetCategory(category model.CategoryDraft) {
	c.mu.Lock()
	c.drafts.Category = category
	c.mu.Unlock()
}

func (c *Console) SetSet(set model.SetDraft) {
	c.mu.Lock()
	c.drafts.Set = set
	c.mu.Unlock()
}

func (c *Console) SetCard(card model.CardDraft) {
	if card.Hashtags == nil {
		card.Hashtags = []string{}
	}
	c.mu.Lock()
	c.drafts.Card = card
	c.mu.Unlock()
}

// SetHashtagsText re-splits the card's hashtags from their display text.
func (c *Console) SetHashtagsText(text string) {
	c.mu.Lock()
	c.drafts.Card.SetHashtagsText(text)
	c.mu.Unlock()
}

func (c *Console) SetGame(game model.GameDraft) {
	c.mu.Lock()
	c.drafts.Game = game
	c.mu.Unlock()
}

func (c *Console) SetCode(code string) {
	c.mu.Lock()
	c.drafts.Code = code
	c.mu.Unlock()
}

func (c *Console) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts.Code
}

func (c *Console) History() []model.Outcome {
	return c.history.Recent()
}

func (c *Console) Status() model.BackendStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Console) SetStatus(status model.BackendStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

func (c *Console) RegisterAdmin(ctx context.Context) model.Outcome {
	admin := c.Drafts().Admin
	return c.run(ctx, model.ActionRegisterAdmin, func(ctx context.Context) (*client.Reply, error) {
		return c.api.RegisterAdmin(ctx, admin)
	})
}

func (c *Console) CreateCategory(ctx context.Context) model.Outcome {
	category := c.Drafts().Category
	return c.run(ctx, model.ActionCreateCategory, func(ctx context.Context) (*client.Reply, error) {
		return c.api.CreateCategory(ctx, category)
	})
}

func (c *Console) CreateSet(ctx context.Context) model.Outcome {
	set := c.Drafts().Set
	return c.run(ctx, model.ActionCreateSet, func(ctx context.Context) (*client.Reply, error) {
		return c.api.CreateSet(ctx, set)
	})
}

func (c *Console) CreateCard(ctx context.Context) model.Outcome {
	card := c.Drafts().Card
	return c.run(ctx, model.ActionCreateCard, func(ctx context.Context) (*client.Reply, error) {
		return c.api.CreateCard(ctx, card)
	})
}

// StartGame stores the returned game code in the code field on success.
func (c *Console) StartGame(ctx context.Context) model.Outcome {
	game := c.Drafts().Game
	outcome := c.run(ctx, model.ActionStartGame, func(ctx context.Context) (*client.Reply, error) {
		return c.api.StartGame(ctx, game)
	})
	if outcome.OK {
		c.SetCode(outcome.GameCode)
	}
	return outcome
}

// GenerateQR asks the backend for the QR of the current code. The QR payload
// itself is neither rendered nor stored.
func (c *Console) GenerateQR(ctx context.Context) model.Outcome {
	code := c.Code()
	return c.run(ctx, model.ActionGenerateQR, func(ctx context.Context) (*client.Reply, error) {
		return c.api.GenerateQR(ctx, code)
	})
}

func (c *Console) run(ctx context.Context, action model.Action, call func(ctx context.Context) (*client.Reply, error)) model.Outcome {
	logger := logutil.GetLogger(ctx).With(zap.String("action", string(action)))
	start := time.Now()
	reply, err := call(ctx)
	outcome := model.Outcome{
		Action: action,
		OK:     err == nil,
		Alert:  client.AlertText(reply, err),
	}
	if err == nil && reply != nil {
		outcome.GameCode = reply.GameCode
	}
	if err != nil {
		logger.Warn("action failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
	} else {
		logger.Info("action finished", zap.String("alert", outcome.Alert), zap.Duration("duration", time.Since(start)))
	}
	return c.history.Add(outcome)
}
