package adserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hipstershop/adservice/internal/ads"
	pb "github.com/hipstershop/adservice/proto/ads"
)

// fixedRand always picks the same index, making the fallback predictable.
type fixedRand struct {
	index int
}

func (r fixedRand) IntN(n int) int {
	return r.index % n
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	selector := ads.NewSelector(ads.NewCatalog(), fixedRand{index: 0}, zap.NewNop())
	return NewHandler(selector, zap.NewNop())
}

func TestGetAdsContextual(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	resp, err := h.GetAds(context.Background(), &pb.AdRequest{
		ContextKeys: []string{"cycling", "cookware"},
	})

	require.NoError(t, err)
	require.Len(t, resp.GetAds(), 2)
	require.Equal(t, "/product/9SIQT8TOJO", resp.GetAds()[0].GetRedirectUrl())
	require.Equal(t, "City Bike for sale. 10% off.", resp.GetAds()[0].GetText())
	require.Equal(t, "/product/1YMWWN1N4O", resp.GetAds()[1].GetRedirectUrl())
}

func TestGetAdsEmptyContextServesRandomPair(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	resp, err := h.GetAds(context.Background(), &pb.AdRequest{})

	require.NoError(t, err)
	require.Len(t, resp.GetAds(), ads.MaxAdsToServe)
}

func TestGetAdsUnknownKeywordsServeRandomPair(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	resp, err := h.GetAds(context.Background(), &pb.AdRequest{
		ContextKeys: []string{"holograms"},
	})

	require.NoError(t, err)
	require.Len(t, resp.GetAds(), ads.MaxAdsToServe)
}

func TestGetAdsDeadCallerEndsCallWithoutResponse(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newTestHandler(t)
	resp, err := h.GetAds(ctx, &pb.AdRequest{ContextKeys: []string{"vintage"}})

	require.Nil(t, resp)
	require.Equal(t, codes.Canceled, status.Code(err))
}
