package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/booking"
	villaRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/villa"
	"github.com/m04kA/AGIA-RentalService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeBookingRepo хранит бронирования в памяти
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking

	// failCreates - сколько ближайших Create завершить конфликтом
	// сериализации. Если задан competitor, он фиксируется при первом
	// конфликте - как коммит победившей гонку транзакции
	failCreates int
	competitor  *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreates > 0 {
		r.failCreates--
		if r.competitor != nil {
			r.bookings = append(r.bookings, r.competitor)
			r.competitor = nil
		}
		return nil, fmt.Errorf("%w: Create - execute insert: pq: could not serialize access due to concurrent update", bookingRepo.ErrSerializationFailure)
	}

	created := *booking
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) GetConfirmedByVillaID(_ context.Context, villaID string) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.VillaID == villaID && b.Status == domain.StatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeVillaRepo struct {
	villas map[string]*domain.Villa
}

func (r *fakeVillaRepo) GetByID(_ context.Context, id string) (*domain.Villa, error) {
	villa, ok := r.villas[id]
	if !ok {
		return nil, villaRepo.ErrVillaNotFound
	}
	return villa, nil
}

// fakeTxManager сериализует транзакции мьютексом: две fn никогда не
// выполняются параллельно, как и настоящие сериализуемые транзакции
// с блокировкой строк виллы
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, villas *fakeVillaRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, villas, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func testVilla() *domain.Villa {
	return &domain.Villa{
		ID:            "villa-1",
		Name:          "Villa Azure",
		PricePerNight: 10000,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "villa-1", resp.VillaID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 4, resp.Nights)
	assert.Equal(t, int64(40000), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.HasReviewed)
}

func TestUseCase_Execute_NormalizesDates(t *testing.T) {
	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 14, 9, 45, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, date(2026, 6, 10), resp.StartDate)
	assert.Equal(t, date(2026, 6, 14), resp.EndDate)
	assert.Equal(t, 4, resp.Nights)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "missing user",
			req: &Request{
				VillaID:   "villa-1",
				StartDate: date(2026, 6, 10),
				EndDate:   date(2026, 6, 14),
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "missing villa",
			req: &Request{
				UserID:    "user-1",
				StartDate: date(2026, 6, 10),
				EndDate:   date(2026, 6, 14),
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "negative total price",
			req: &Request{
				UserID:     "user-1",
				VillaID:    "villa-1",
				StartDate:  date(2026, 6, 10),
				EndDate:    date(2026, 6, 14),
				TotalPrice: -1,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "end before start",
			req: &Request{
				UserID:    "user-1",
				VillaID:   "villa-1",
				StartDate: date(2026, 6, 14),
				EndDate:   date(2026, 6, 10),
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "zero-length stay",
			req: &Request{
				UserID:    "user-1",
				VillaID:   "villa-1",
				StartDate: date(2026, 6, 10),
				EndDate:   date(2026, 6, 10),
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "start date in past",
			req: &Request{
				UserID:    "user-1",
				VillaID:   "villa-1",
				StartDate: date(2026, 5, 20),
				EndDate:   date(2026, 5, 25),
			},
			wantErr: ErrDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
			uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_StartToday(t *testing.T) {
	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}

	// Заезд сегодня допустим, даже если сейчас уже вечер
	uc := newTestUseCase(bookings, villas, time.Date(2026, 6, 10, 22, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})
	require.NoError(t, err)
}

func TestUseCase_Execute_VillaNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "missing",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})
	assert.ErrorIs(t, err, ErrVillaNotFound)
}

func TestUseCase_Execute_OverlapRejected(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{
			name:  "identical range",
			start: date(2026, 6, 10), end: date(2026, 6, 14),
			wantErr: ErrDatesUnavailable,
		},
		{
			name:  "partial overlap",
			start: date(2026, 6, 12), end: date(2026, 6, 20),
			wantErr: ErrDatesUnavailable,
		},
		{
			name:  "contains existing",
			start: date(2026, 6, 1), end: date(2026, 6, 30),
			wantErr: ErrDatesUnavailable,
		},
		{
			name:  "back-to-back after checkout",
			start: date(2026, 6, 14), end: date(2026, 6, 18),
			wantErr: nil,
		},
		{
			name:  "back-to-back before check-in",
			start: date(2026, 6, 5), end: date(2026, 6, 10),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
			uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

			_, err := uc.Execute(context.Background(), &Request{
				UserID:    "user-1",
				VillaID:   "villa-1",
				StartDate: date(2026, 6, 10),
				EndDate:   date(2026, 6, 14),
			})
			require.NoError(t, err)

			_, err = uc.Execute(context.Background(), &Request{
				UserID:    "user-2",
				VillaID:   "villa-1",
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUseCase_Execute_CancelledDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{}
	bookings.bookings = append(bookings.bookings, &domain.Booking{
		ID:        uuid.NewString(),
		VillaID:   "villa-1",
		UserID:    "user-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
		Status:    domain.StatusCancelled,
	})
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	// Отменённое бронирование немедленно освобождает диапазон
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-2",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})
	require.NoError(t, err)
}

func TestUseCase_Execute_DifferentVillasIndependent(t *testing.T) {
	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{
		"villa-1": testVilla(),
		"villa-2": {ID: "villa-2", Name: "Villa Breeze", PricePerNight: 15000},
	}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})
	require.NoError(t, err)

	// Те же даты на другой вилле свободны
	_, err = uc.Execute(context.Background(), &Request{
		UserID:    "user-2",
		VillaID:   "villa-2",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})
	require.NoError(t, err)
}

func TestUseCase_Execute_PriceVerification(t *testing.T) {
	villaWithDiscount := testVilla()
	villaWithDiscount.DiscountPrice = ptr.Ptr(int64(8000))

	tests := []struct {
		name        string
		clientPrice int64
		wantErr     error
		wantTotal   int64
	}{
		{
			name:        "unspecified price uses server calculation",
			clientPrice: 0,
			wantTotal:   32000,
		},
		{
			name:        "matching price accepted",
			clientPrice: 32000,
			wantTotal:   32000,
		},
		{
			name:        "stale full price rejected",
			clientPrice: 40000,
			wantErr:     ErrPriceMismatch,
		},
		{
			name:        "understated price rejected",
			clientPrice: 100,
			wantErr:     ErrPriceMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": villaWithDiscount}}
			uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

			resp, err := uc.Execute(context.Background(), &Request{
				UserID:     "user-1",
				VillaID:    "villa-1",
				StartDate:  date(2026, 6, 10),
				EndDate:    date(2026, 6, 14),
				TotalPrice: tt.clientPrice,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, resp.TotalPrice)
		})
	}
}

func TestUseCase_Execute_ConcurrentRequests(t *testing.T) {
	const workers = 10

	bookings := &fakeBookingRepo{}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:    fmt.Sprintf("user-%d", i),
				VillaID:   "villa-1",
				StartDate: date(2026, 6, 10),
				EndDate:   date(2026, 6, 14),
			})
		}(i)
	}
	wg.Wait()

	// Из N конкурентных запросов на один диапазон проходит ровно один
	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, ErrDatesUnavailable)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, bookings.bookings, 1)
}

func TestUseCase_Execute_RetriesAfterSerializationConflict(t *testing.T) {
	// Конфликт сериализации при свободном календаре: повтор транзакции
	// проходит, клиент получает успешное бронирование
	bookings := &fakeBookingRepo{failCreates: 1}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, bookings.bookings, 1)
}

func TestUseCase_Execute_LostRaceReportsDatesUnavailable(t *testing.T) {
	// Проигрыш гонки: конкурент закоммитил пересекающееся бронирование,
	// наша транзакция оборвалась конфликтом сериализации. На повторе
	// проверка пересечения видит бронирование победителя - клиент получает
	// обычный отказ по занятости, а не внутреннюю ошибку
	bookings := &fakeBookingRepo{
		failCreates: 1,
		competitor: &domain.Booking{
			ID:        "winner",
			VillaID:   "villa-1",
			UserID:    "user-2",
			StartDate: date(2026, 6, 10),
			EndDate:   date(2026, 6, 14),
			Status:    domain.StatusConfirmed,
		},
	}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 12),
		EndDate:   date(2026, 6, 16),
	})

	require.ErrorIs(t, err, ErrDatesUnavailable)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, "winner", bookings.bookings[0].ID)
}

func TestUseCase_Execute_PersistentSerializationConflict(t *testing.T) {
	// Конфликт не уходит и после повторов: для клиента это занятые даты,
	// внутренняя ошибка наружу не отдаётся
	bookings := &fakeBookingRepo{failCreates: maxSerializationRetries + 5}
	villas := &fakeVillaRepo{villas: map[string]*domain.Villa{"villa-1": testVilla()}}
	uc := newTestUseCase(bookings, villas, date(2026, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		VillaID:   "villa-1",
		StartDate: date(2026, 6, 10),
		EndDate:   date(2026, 6, 14),
	})

	require.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Empty(t, bookings.bookings)
}
