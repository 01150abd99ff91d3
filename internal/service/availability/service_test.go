package availability

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

type mockFeed struct {
	mock.Mock
}

func (m *mockFeed) GetRates(ctx context.Context, start, end types.Date) ([]smoobu.DayRate, error) {
	args := m.Called(ctx, start, end)
	rates, _ := args.Get(0).([]smoobu.DayRate)
	return rates, args.Error(1)
}

func d(s string) types.Date {
	return types.MustParseDate(s)
}

func rate(date string, price float64, available int) smoobu.DayRate {
	return smoobu.DayRate{Date: d(date), Price: ptr.Ptr(price), Available: available, MinLengthOfStay: ptr.Ptr(2)}
}

func TestMonthWindows(t *testing.T) {
	windows := MonthWindows(d("2026-01-20"), d("2026-03-05"))

	require.Len(t, windows, 3)
	assert.Equal(t, Window{Start: d("2026-01-20"), End: d("2026-01-31")}, windows[0])
	assert.Equal(t, Window{Start: d("2026-02-01"), End: d("2026-02-28")}, windows[1])
	assert.Equal(t, Window{Start: d("2026-03-01"), End: d("2026-03-05")}, windows[2])

	single := MonthWindows(d("2026-05-10"), d("2026-05-10"))
	assert.Equal(t, []Window{{Start: d("2026-05-10"), End: d("2026-05-10")}}, single)

	assert.Empty(t, MonthWindows(d("2026-05-10"), d("2026-05-09")))
}

func TestLoad_MergesWindowsInOrder(t *testing.T) {
	feed := new(mockFeed)
	feed.On("GetRates", mock.Anything, d("2026-07-30"), d("2026-07-31")).
		Return([]smoobu.DayRate{rate("2026-07-30", 240, 1), rate("2026-07-31", 240, 0)}, nil).Once()
	feed.On("GetRates", mock.Anything, d("2026-08-01"), d("2026-08-02")).
		Return([]smoobu.DayRate{rate("2026-08-01", 260, 1), rate("2026-08-02", 260, 1)}, nil).Once()

	svc := NewService(feed, NewIndex(), logger.NewWithWriter(io.Discard, "debug"))

	days, err := svc.Load(context.Background(), d("2026-07-30"), d("2026-08-02"))
	require.NoError(t, err)
	require.Len(t, days, 4)

	assert.Equal(t, d("2026-07-30"), days[0].Date)
	assert.True(t, days[0].Available)
	assert.False(t, days[1].Available)
	assert.Equal(t, 260.0, *days[3].Price)
	assert.Equal(t, 2, *days[3].MinStay)

	feed.AssertExpectations(t)
}

func TestLoad_FeedFailure(t *testing.T) {
	feed := new(mockFeed)
	feed.On("GetRates", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	svc := NewService(feed, NewIndex(), logger.NewWithWriter(io.Discard, "debug"))

	_, err := svc.Load(context.Background(), d("2026-07-01"), d("2026-07-10"))
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestLoad_InvalidRange(t *testing.T) {
	svc := NewService(new(mockFeed), NewIndex(), logger.NewWithWriter(io.Discard, "debug"))

	_, err := svc.Load(context.Background(), d("2026-07-10"), d("2026-07-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Load(context.Background(), d("2026-01-01"), d("2027-06-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	err = svc.EnsureStay(context.Background(), d("2026-07-10"), d("2026-07-10"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIndex_LastWriteWins(t *testing.T) {
	index := NewIndex()

	index.Merge([]domain.AvailabilityDay{{Date: d("2026-07-01"), Price: ptr.Ptr(200.0), Available: true}})
	index.Merge([]domain.AvailabilityDay{{Date: d("2026-07-01"), Price: ptr.Ptr(300.0), Available: false}})

	day, ok := index.Day(d("2026-07-01"))
	require.True(t, ok)
	assert.False(t, day.Available)
	assert.Equal(t, 300.0, *day.Price)
	assert.Equal(t, 1, index.Len())
}

func TestIndex_RangeAndCovers(t *testing.T) {
	index := NewIndex()
	index.Merge([]domain.AvailabilityDay{
		{Date: d("2026-07-03"), Available: true},
		{Date: d("2026-07-01"), Available: true},
		{Date: d("2026-07-02"), Available: false},
		{Date: d("2026-07-10"), Available: true},
		{}, // дата не задана - игнорируется
	})

	days := index.Range(d("2026-07-01"), d("2026-07-03"))
	require.Len(t, days, 3)
	assert.Equal(t, d("2026-07-01"), days[0].Date)
	assert.Equal(t, d("2026-07-03"), days[2].Date)

	assert.True(t, index.Covers(d("2026-07-01"), d("2026-07-03")))
	assert.False(t, index.Covers(d("2026-07-01"), d("2026-07-04")))
	assert.Equal(t, 4, index.Len())
}

func TestIndex_ConcurrentMerges(t *testing.T) {
	index := NewIndex()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			index.Merge([]domain.AvailabilityDay{{Date: d("2026-07-01").AddDays(i), Available: true}})
			_ = index.Range(d("2026-07-01"), d("2026-07-31"))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, index.Len())
}
