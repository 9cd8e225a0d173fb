// Package handlers wires the HTTP surface: menu and order endpoints,
// the root health message and the database diagnostics endpoint.
package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"pizza-api/internal/store"
)

// DocumentStore is the persistence contract handlers depend on. The
// mongo-backed store.Store satisfies it; tests substitute an in-memory
// fake.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	ListAll(ctx context.Context, collection string, out any) error
	Describe(ctx context.Context) store.Description
}

// respondError maps a collaborator error to a status code and writes the
// {"detail": ...} body the clients expect. Validation failures are
// handled at the bind site and never reach here.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	status := 500
	if errors.Is(err, store.ErrUnavailable) {
		status = 503
	}
	log.Error("request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	c.JSON(status, gin.H{"detail": err.Error()})
}

func respondInvalid(c *gin.Context, log *slog.Logger, detail string) {
	log.Warn("invalid request body", "path", c.Request.URL.Path, "detail", detail)
	c.JSON(400, gin.H{"detail": detail})
}
