package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio-deck-api/domain"
)

const releaseTimeout = 5 * time.Second

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, gen Generator, del Deliverer, auth Authenticator, ded Deduper, log *log.Logger) {
	e.POST("/api/decks", postDecks(gen, del, auth, ded, log))
	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func postDecks(gen Generator, del Deliverer, auth Authenticator, ded Deduper, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, spanCtx := newDeckRequestMetrics(ctx, logger)
		if spanCtx != nil {
			req := c.Request().WithContext(spanCtx)
			c.SetRequest(req)
			ctx = spanCtx
		}
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		authStart := time.Now()
		userID, authErr := auth.UserIDFromAuthHeader(c.Request().Header.Get("Authorization"))
		metrics.ObserveAuth(time.Since(authStart))
		if authErr != nil {
			metrics.SetErrorStage("auth")
			err = c.String(http.StatusUnauthorized, authErr.Error())
			return err
		}

		payload, readErr := io.ReadAll(io.LimitReader(c.Request().Body, postDeckMaxSize))
		if readErr != nil {
			metrics.SetErrorStage("read_body")
			err = c.JSON(http.StatusBadRequest, postDeckResponse{Status: statusError, Error: "unable to read request body"})
			return err
		}

		records, parseErr := domain.ParseRecords(payload)
		if parseErr != nil {
			metrics.SetErrorStage("parse_payload")
			err = c.JSON(http.StatusBadRequest, postDeckResponse{Status: statusError, Error: parseErr.Error()})
			return err
		}
		metrics.SetRecords(len(records))
		deckID := uuid.NewString()
		metrics.SetDeckID(deckID)

		// Identical payloads within the dedupe window produce identical
		// decks, so repeats are acknowledged without rendering. A broken
		// deduper must not block reporting.
		digest := payloadDigest(payload)
		fresh, dedupeErr := ded.Add(ctx, userID, digest)
		if dedupeErr != nil {
			logger.WithError(dedupeErr).Warn("Deduper unavailable; generating anyway")
			fresh = true
		}
		if !fresh {
			metrics.SetDuplicate(true)
			err = c.JSON(http.StatusOK, postDeckResponse{
				Status:  statusDuplicate,
				Message: "identical payload already processed",
				Records: len(records),
			})
			return err
		}

		renderStart := time.Now()
		deck, pages, genErr := gen.Generate(ctx, records)
		metrics.ObserveRender(time.Since(renderStart))
		if genErr != nil {
			metrics.SetErrorStage("render")
			releaseDigest(ded, userID, digest, logger)
			c.Logger().Error(genErr)
			err = c.JSON(http.StatusInternalServerError, postDeckResponse{Status: statusError, Error: "deck generation failed"})
			return err
		}
		metrics.SetPages(pages)

		filename := deckFilename(time.Now())
		deliverStart := time.Now()
		deliverErr := del.Deliver(ctx, filename, deck)
		metrics.ObserveDeliver(time.Since(deliverStart))
		if deliverErr != nil {
			metrics.SetErrorStage("deliver")
			releaseDigest(ded, userID, digest, logger)
			c.Logger().Error(deliverErr)
			err = c.JSON(http.StatusBadGateway, postDeckResponse{
				Status:   statusPartialSuccess,
				Message:  "deck generated but delivery failed",
				DeckID:   deckID,
				Records:  len(records),
				Filename: filename,
				Pages:    pages,
				Error:    deliverErr.Error(),
			})
			return err
		}

		err = c.JSON(http.StatusOK, postDeckResponse{
			Status:   statusSuccess,
			Message:  "report generated and delivered",
			DeckID:   deckID,
			Records:  len(records),
			Filename: filename,
			Pages:    pages,
		})
		return err
	}
}

func payloadDigest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// releaseDigest frees the dedupe slot after a failed run so the caller may
// retry with the same payload. Uses a background context: the request may
// already be canceled.
func releaseDigest(ded Deduper, userID, digest string, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := ded.Remove(ctx, userID, digest); err != nil {
		logger.WithError(err).Warn("Failed to release dedupe digest")
	}
}
