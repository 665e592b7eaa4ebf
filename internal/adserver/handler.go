// Package adserver exposes the gRPC interface for the ad service.
package adserver

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/hipstershop/adservice/internal/ads"
	"github.com/hipstershop/adservice/internal/telemetry"
	pb "github.com/hipstershop/adservice/proto/ads"
)

const tracerName = "github.com/hipstershop/adservice/internal/adserver"

// Handler serves AdService RPCs backed by the in-memory selector.
type Handler struct {
	pb.UnimplementedAdServiceServer

	selector *ads.Selector
	logger   *zap.Logger
}

// NewHandler constructs a Handler.
func NewHandler(selector *ads.Selector, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{selector: selector, logger: logger}
}

// GetAds returns the ads registered under the request's context keywords,
// or a random sample when no keywords are given or none match. The call
// cannot fail on its own; the only error path is the transport tearing the
// call down underneath it.
func (h *Handler) GetAds(ctx context.Context, req *pb.AdRequest) (*pb.AdResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Retrieve Ads")
	defer span.End()
	span.SetAttributes(attribute.String("method", "GetAds"))

	keys := req.GetContextKeys()
	if len(keys) > 0 {
		span.AddEvent("Constructing Ads using context", oteltrace.WithAttributes(
			attribute.StringSlice("context_keys", keys),
			attribute.Int("context_keys.count", len(keys)),
		))
	} else {
		span.AddEvent("No context provided. Constructing random Ads.")
	}

	logger := h.logger.With(zap.String("request_id", uuid.NewString()))
	logger.Info("received ad request", zap.Strings("context_keys", keys))

	picked, matched := h.selector.Select(keys)
	path := telemetry.PathContextual
	if !matched {
		path = telemetry.PathRandom
		if len(keys) > 0 {
			span.AddEvent("No Ads found based on context. Constructing random Ads.")
		}
	}

	if err := ctx.Err(); err != nil {
		// The caller is already gone; end the call without a response.
		logger.Warn("GetAds call torn down by transport", zap.Error(err))
		telemetry.ObserveRequestError()
		return nil, status.FromContextError(err).Err()
	}

	resp := &pb.AdResponse{Ads: make([]*pb.Ad, 0, len(picked))}
	redirects := make([]string, 0, len(picked))
	for _, ad := range picked {
		resp.Ads = append(resp.Ads, &pb.Ad{RedirectUrl: ad.RedirectURL, Text: ad.Text})
		redirects = append(redirects, ad.RedirectURL)
	}

	telemetry.ObserveRequest(path, len(picked))
	logger.Info("returning ads",
		zap.String("path", path),
		zap.Int("count", len(picked)),
		zap.Strings("redirect_urls", redirects),
	)
	return resp, nil
}
