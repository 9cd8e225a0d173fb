package handlers

import (
	"context"
	"io"
	"log/slog"
	"reflect"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-api/internal/config"
	"pizza-api/internal/store"
)

// fakeStore is an in-memory DocumentStore. Documents round-trip through
// BSON so they behave like real mongo documents, ids included.
type fakeStore struct {
	collections map[string][]bson.M
	desc        store.Description
	err         error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: make(map[string][]bson.M),
		desc: store.Description{
			Available: true,
			Connected: true,
			Database:  "pizzeria",
			Status:    "connected",
		},
	}
}

func (f *fakeStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	f.collections[collection] = append(f.collections[collection], m)
	return id.Hex(), nil
}

func (f *fakeStore) ListAll(_ context.Context, collection string, out any) error {
	if f.err != nil {
		return f.err
	}
	slice := reflect.ValueOf(out).Elem()
	for _, doc := range f.collections[collection] {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (f *fakeStore) Describe(context.Context) store.Description {
	return f.desc
}

func newTestRouter(st DocumentStore, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(cfg, st, log)
}
