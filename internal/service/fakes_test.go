package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// memStore is an in-memory stand-in for the database shared by the fake
// repositories below. Conditional updates mirror the SQL WHERE clauses.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	drivers  map[string]*models.Driver
	rides    map[string]*models.Ride
	bookings map[string]*models.Booking
	reviews  map[string]*models.Review // keyed by booking id
	alerts   []*models.SOSAlert
	seq      int

	failBookingsList   bool
	failBookingsCancel bool
	failRidesList      bool
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*models.User{},
		drivers:  map[string]*models.Driver{},
		rides:    map[string]*models.Ride{},
		bookings: map[string]*models.Booking{},
		reviews:  map[string]*models.Review{},
	}
}

func (m *memStore) addDriver(userID string, verified bool) *models.Driver {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := &models.Driver{ID: "drv-" + userID, UserID: userID, IsVerified: verified, PrimaryPhone: "98000" + userID}
	m.drivers[d.ID] = d
	return d
}

func (m *memStore) addRide(id, driverID string, price float64, seats int, status string, completed *bool) *models.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	r := &models.Ride{
		ID: id, DriverID: driverID, Price: price, TotalSeats: seats, AvailableSeats: seats,
		Status: status, IsRideCompleted: completed,
	}
	r.CreatedAt = r.CreatedAt.AddDate(0, 0, m.seq)
	m.rides[id] = r
	return r
}

func (m *memStore) addBooking(id, rideID, userID string, seats int, status string) *models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := &models.Booking{ID: id, RideID: rideID, UserID: userID, SeatsBooked: seats, Status: status}
	m.bookings[id] = b
	return b
}

func (m *memStore) ride(id string) models.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.rides[id]
}

func (m *memStore) driver(id string) models.Driver {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.drivers[id]
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func boolPtr(b bool) *bool { return &b }

type fakeUserRepo struct{ s *memStore }

func (f fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.users[user.ID] = user
	return nil
}

func (f fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.users[id], nil
}

type fakeDriverRepo struct{ s *memStore }

func (f fakeDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.drivers[driver.ID] = driver
	return nil
}

func (f fakeDriverRepo) GetByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, d := range f.s.drivers {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeRideRepo struct{ s *memStore }

func (f fakeRideRepo) Create(ctx context.Context, ride *models.Ride) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if ride.ID == "" {
		ride.ID = f.s.nextID("ride")
	}
	ride.Status = models.RideStatusActive
	ride.IsRideCompleted = nil
	ride.AvailableSeats = ride.TotalSeats
	cp := *ride
	f.s.rides[ride.ID] = &cp
	return nil
}

func (f fakeRideRepo) GetByID(ctx context.Context, id string) (*models.Ride, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if r, ok := f.s.rides[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f fakeRideRepo) ListByDriverID(ctx context.Context, driverID string) ([]*models.Ride, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failRidesList {
		return nil, errStoreDown
	}
	rides := []*models.Ride{}
	for _, r := range f.s.rides {
		if r.DriverID == driverID {
			cp := *r
			rides = append(rides, &cp)
		}
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].CreatedAt.After(rides[j].CreatedAt) })
	return rides, nil
}

// activeOwned must be called with the lock held.
func (f fakeRideRepo) activeOwned(id, driverID string) (*models.Ride, error) {
	r, ok := f.s.rides[id]
	if !ok || r.DriverID != driverID || r.Status != models.RideStatusActive {
		return nil, apperrors.ErrInvalidTransition
	}
	return r, nil
}

func (f fakeRideRepo) UpdatePrice(ctx context.Context, id, driverID string, price float64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, err := f.activeOwned(id, driverID)
	if err != nil {
		return err
	}
	r.Price = price
	return nil
}

func (f fakeRideRepo) Complete(ctx context.Context, id, driverID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, err := f.activeOwned(id, driverID)
	if err != nil {
		return err
	}
	r.Status = models.RideStatusCompleted
	r.IsRideCompleted = boolPtr(true)
	f.s.drivers[driverID].CompletedRides++
	return nil
}

func (f fakeRideRepo) Cancel(ctx context.Context, id, driverID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, err := f.activeOwned(id, driverID)
	if err != nil {
		return err
	}
	r.Status = models.RideStatusCancelled
	r.IsRideCompleted = boolPtr(false)
	return nil
}

type fakeBookingRepo struct{ s *memStore }

func (f fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.bookings[booking.ID] = booking
	return nil
}

func (f fakeBookingRepo) ListEarningsByDriverID(ctx context.Context, driverID string) ([]*models.EarningsBooking, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failBookingsList {
		return nil, errStoreDown
	}
	out := []*models.EarningsBooking{}
	for _, b := range f.s.bookings {
		r := f.s.rides[b.RideID]
		if r == nil || r.DriverID != driverID || !r.IsEarningsEligible() {
			continue
		}
		out = append(out, &models.EarningsBooking{Booking: *b, RidePrice: r.Price, RideCompleted: r.IsRideCompleted})
	}
	return out, nil
}

func (f fakeBookingRepo) ListSummaryByRideID(ctx context.Context, rideID string, statuses []string) ([]*models.BookingSummary, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*models.BookingSummary{}
	for _, b := range f.s.bookings {
		if b.RideID != rideID {
			continue
		}
		for _, st := range statuses {
			if b.Status == st {
				phone := ""
				if u := f.s.users[b.UserID]; u != nil {
					phone = u.Phone
				}
				out = append(out, &models.BookingSummary{ID: b.ID, SeatsBooked: b.SeatsBooked, Status: b.Status, CustomerPhone: phone})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeBookingRepo) CancelByRideID(ctx context.Context, rideID string) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failBookingsCancel {
		return 0, errStoreDown
	}
	var n int64
	for _, b := range f.s.bookings {
		if b.RideID == rideID {
			b.Status = models.BookingStatusCancelled
			n++
		}
	}
	return n, nil
}

func (f fakeBookingRepo) GetOwner(ctx context.Context, bookingID string) (*models.BookingOwner, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	b, ok := f.s.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	r := f.s.rides[b.RideID]
	return &models.BookingOwner{BookingID: b.ID, CustomerID: b.UserID, RideID: b.RideID, DriverID: r.DriverID}, nil
}

type fakeReviewRepo struct{ s *memStore }

func (f fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, exists := f.s.reviews[review.BookingID]; exists {
		return apperrors.ErrAlreadyReviewed
	}
	f.s.reviews[review.BookingID] = review
	return nil
}

type fakeSOSRepo struct{ s *memStore }

func (f fakeSOSRepo) Create(ctx context.Context, alert *models.SOSAlert) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	alert.ID = "sos-1"
	alert.Status = models.SOSStatusActive
	f.s.alerts = append(f.s.alerts, alert)
	return nil
}

type fakePublisher struct {
	published []*models.SOSAlert
	err       error
}

func (p *fakePublisher) PublishSOS(ctx context.Context, alert *models.SOSAlert) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, alert)
	return nil
}
