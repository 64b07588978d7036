package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/Densaugeo/paragen/internal/pkg/application/scenegen"
	"github.com/Densaugeo/paragen/internal/pkg/presentation/api/auth"
	"github.com/Densaugeo/paragen/pkg/export"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const SceneContentType string = "model/gltf+json"

func RegisterHandlers(ctx context.Context, r *chi.Mux, policies io.Reader, app scenegen.SceneProvider) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	log := logging.GetFromContext(ctx)

	r.Route("/api", func(r chi.Router) {
		r.Use(Logger(log))

		r.Get("/scenes/{sceneName}", NewRetrieveSceneHandler(app, authenticator))
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewRetrieveSceneHandler serves scene documents through a single shared
// export channel. The channel is a single slot register, so export and
// retrieval happen under one holder and contention is reported as a 503
// rather than queued behind the export in flight.
func NewRetrieveSceneHandler(app scenegen.SceneProvider, authenticator auth.Authenticator) http.HandlerFunc {
	channel := export.NewChannel()
	mu := &sync.Mutex{}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)
		traceID := traceIDFromContext(ctx)

		sceneName := chi.URLParam(r, "sceneName")

		if err := authenticator.CheckAccess(ctx, r, sceneName); err != nil {
			log.Warn("access denied", slog.String("scene", sceneName), "err", err.Error())
			newUnauthorized("access denied", traceID).WriteResponse(w)
			return
		}

		doc, err := app.Scene(ctx, sceneName)
		if err != nil {
			if errors.Is(err, scenegen.ErrNotFound) {
				newNotFound(err.Error(), traceID).WriteResponse(w)
				return
			}

			log.Error("failed to assemble scene", slog.String("scene", sceneName), "err", err.Error())
			newInternalError("failed to assemble scene", traceID).WriteResponse(w)
			return
		}

		if !mu.TryLock() {
			newExportBusy("another export is in flight", traceID).WriteResponse(w)
			return
		}
		defer mu.Unlock()

		switch code := channel.Export(ctx, doc); code {
		case export.None:
		case export.Mutex:
			newExportBusy("another export is in flight", traceID).WriteResponse(w)
			return
		default:
			newInternalError("scene generation failed", traceID).WriteResponse(w)
			return
		}

		body := channel.Bytes()

		w.Header().Set("Content-Type", SceneContentType)
		w.Header().Set("X-Export-Id", uuid.NewString())
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		w.Write(body)

		log.Debug("served exported scene", slog.String("scene", sceneName), slog.Int("bytes", len(body)))
	}
}

func traceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanFromContext(ctx).SpanContext()

	if spanCtx.HasTraceID() {
		return spanCtx.TraceID().String()
	}

	return ""
}
