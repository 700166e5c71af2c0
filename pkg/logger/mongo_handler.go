// MongoHandler is an slog.Handler that mirrors log records into a Mongo
// collection, off the request path:
//
//   - records are enqueued into a buffered channel, never blocking
//   - one background goroutine drains the channel with InsertMany batches
//   - a full queue drops the record; logging must not stall handlers
//   - Close flushes what is queued and stops the drain loop
//
// Enabled when LOG_MONGO_COLLECTION is configured; see internal/server.
package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoQueueSize = 2048
	mongoBatchSize = 50
	mongoDrainTick = 2 * time.Second
)

// LogDocument is the shape written to Mongo.
type LogDocument struct {
	Time      time.Time `bson:"time"`
	Level     string    `bson:"level"`
	Msg       string    `bson:"msg"`
	RequestID string    `bson:"request_id,omitempty"`
	Attrs     bson.M    `bson:"attrs,omitempty"`
}

// MongoHandler writes slog records to a Mongo collection asynchronously.
type MongoHandler struct {
	col   *mongo.Collection
	queue chan LogDocument
	done  chan struct{}
	attrs []slog.Attr
}

// NewMongoHandler starts the drain loop against col. The caller owns the
// underlying client; Close only stops the loop and flushes the queue.
func NewMongoHandler(col *mongo.Collection) *MongoHandler {
	h := &MongoHandler{
		col:   col,
		queue: make(chan LogDocument, mongoQueueSize),
		done:  make(chan struct{}),
	}
	go h.drainLoop()
	return h
}

func (h *MongoHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *MongoHandler) Handle(_ context.Context, r slog.Record) error {
	doc := LogDocument{
		Time:  r.Time,
		Level: r.Level.String(),
		Msg:   r.Message,
		Attrs: bson.M{},
	}

	collect := func(a slog.Attr) {
		if a.Key == "request_id" {
			doc.RequestID = a.Value.String()
			return
		}
		doc.Attrs[a.Key] = a.Value.Any()
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(a)
		return true
	})

	select {
	case h.queue <- doc:
	default:
		// queue full, record dropped
	}
	return nil
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &MongoHandler{col: h.col, queue: h.queue, done: h.done, attrs: merged}
}

func (h *MongoHandler) WithGroup(_ string) slog.Handler { return h }

// AttachMongo fans the base logger out to a Mongo sink alongside its
// existing handler. Returns the handler so the caller can Close it at
// shutdown.
func AttachMongo(col *mongo.Collection) *MongoHandler {
	mh := NewMongoHandler(col)
	L = slog.New(fanout{L.Handler(), mh})
	slog.SetDefault(L)
	return mh
}

// fanout duplicates every record to all child handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// Close flushes pending documents and stops the drain loop.
func (h *MongoHandler) Close() {
	close(h.done)
}

func (h *MongoHandler) drainLoop() {
	ticker := time.NewTicker(mongoDrainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, mongoBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = h.col.InsertMany(ctx, batch)
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
			if len(batch) >= mongoBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.done:
			for {
				select {
				case doc := <-h.queue:
					batch = append(batch, doc)
				default:
					flush()
					return
				}
			}
		}
	}
}
