package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/loanword-api/internal/model"
	"github.com/iliyamo/loanword-api/internal/queue"
	"github.com/iliyamo/loanword-api/internal/service"
)

// DeckHandler bundles the selector and the optional event publisher for
// the deck generation endpoint.
type DeckHandler struct {
	Selector  *service.Selector
	Publisher *queue.Publisher
	Log       *logrus.Logger
}

// NewDeckHandler constructs a DeckHandler and panics on a nil selector.
func NewDeckHandler(sel *service.Selector, pub *queue.Publisher, log *logrus.Logger) *DeckHandler {
	if sel == nil {
		panic("nil selector passed to NewDeckHandler")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DeckHandler{Selector: sel, Publisher: pub, Log: log}
}

// Generate serves POST /v1/decks/generate (JSON body) and the equivalent
// GET with target/known/difficulty query parameters.  Echo binds both
// shapes into the same DeckRequest.
func (h *DeckHandler) Generate(c echo.Context) error {
	var req model.DeckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "VALIDATION_ERROR",
			"message": "invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cards, err := h.Selector.SelectDeck(ctx, req.TargetLanguage, req.KnownLanguages)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "VALIDATION_ERROR",
				"message": ve.Message,
			})
		}
		h.Log.WithError(err).Error("deck generation failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "STORE_ERROR",
			"message": err.Error(),
		})
	}

	deck := model.Deck{
		DeckID:         "deck_" + req.TargetLanguage,
		TargetLanguage: req.TargetLanguage,
		KnownLanguages: req.KnownLanguages,
		Difficulty:     req.Difficulty,
		Cards:          cards,
	}

	if h.Publisher != nil && h.Publisher.Enabled() {
		event := queue.DeckGeneratedEvent{
			DeckID:         deck.DeckID,
			TargetLanguage: deck.TargetLanguage,
			KnownLanguages: deck.KnownLanguages,
			Difficulty:     deck.Difficulty,
			CardCount:      len(deck.Cards),
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget; a broker outage must not fail the request.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publisher.PublishDeckGenerated(ctx, event)
		}()
	}

	return c.JSON(http.StatusOK, deck)
}
