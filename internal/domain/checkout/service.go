// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/order"
	"github.com/prestigeweddings/storefront-backend/internal/infrastructure/session"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/email"
)

// ErrEmptyCart is returned when checkout is submitted with no cart lines
var ErrEmptyCart = errors.New("cannot check out an empty cart")

// ValidationError carries the aggregated field errors of a failed checkout
// form
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return "checkout validation failed"
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Service handles checkout business logic. The clock and randomness source
// behind order IDs are injectable so order building stays deterministic in
// tests.
type Service struct {
	store  session.Store
	config *config.Config
	mailer *email.Service
	log    *logrus.Logger

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a new checkout service
func NewService(store session.Store, cfg *config.Config, mailer *email.Service, log *logrus.Logger) *Service {
	return &Service{
		store:  store,
		config: cfg,
		mailer: mailer,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock overrides the clock used for order IDs and timestamps
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithRandSource overrides the randomness source behind order ID suffixes
func (s *Service) WithRandSource(src rand.Source) *Service {
	s.rng = rand.New(src)
	return s
}

// SubmitRequest represents a checkout submission
type SubmitRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// Submit validates the checkout form, builds the order from the session
// cart snapshot, retains the order in the session, and clears the cart.
// Field errors come back as a *ValidationError.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*order.Record, error) {
	c, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	info := CustomerInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if result := Validate(info, req.TermsAccepted); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	record := s.BuildOrder(c.Snapshot(), info)

	if err := s.store.SaveOrder(ctx, sessionID, record); err != nil {
		return nil, fmt.Errorf("failed to retain order: %w", err)
	}

	// Clearing the cart is the post-success step; a failure here must not
	// lose the already-built order.
	if err := s.store.DeleteCart(ctx, sessionID); err != nil {
		s.log.WithError(err).WithField("order_id", record.OrderID).
			Warn("Failed to clear cart after checkout")
	}

	s.sendConfirmation(record)

	return record, nil
}

// BuildOrder produces an immutable order record from a cart snapshot and
// validated customer info. It does not touch the session; clearing the cart
// is the caller's post-success action.
func (s *Service) BuildOrder(lines []cart.Line, info CustomerInfo) *order.Record {
	snapshot := make([]cart.Line, len(lines))
	copy(snapshot, lines)

	var totalUSD, totalKES int64
	for _, line := range snapshot {
		totalUSD += line.TotalUSD()
		totalKES += line.TotalKES()
	}

	return &order.Record{
		OrderID: s.generateOrderID(),
		Customer: order.Customer{
			FullName: strings.TrimSpace(info.FullName),
			Email:    strings.TrimSpace(info.Email),
			Phone:    s.config.Checkout.PhonePrefix + strings.TrimSpace(info.Phone),
			Address:  strings.TrimSpace(info.Address),
		},
		Lines:         snapshot,
		TotalUSD:      totalUSD,
		TotalKES:      totalKES,
		PaymentStatus: order.PaymentStatusPending,
		Status:        order.StatusNew,
		CreatedAt:     s.now(),
	}
}

// GetOrder retrieves a previously built order from the session
func (s *Service) GetOrder(ctx context.Context, sessionID, orderID string) (*order.Record, error) {
	return s.store.GetOrder(ctx, sessionID, orderID)
}

// generateOrderID returns "ORD-<unix millis>-<9 base36 chars>". The
// millisecond clock component plus nine characters of randomness keeps IDs
// unique within a session under any realistic submission rate.
func (s *Service) generateOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Alphabet[s.rng.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), suffix)
}

// sendConfirmation emails the order confirmation best-effort; checkout
// never fails on email problems
func (s *Service) sendConfirmation(record *order.Record) {
	if s.mailer == nil || !s.config.EmailEnabled() {
		return
	}

	go func() {
		if err := s.mailer.SendOrderConfirmation(record); err != nil {
			s.log.WithError(err).WithField("order_id", record.OrderID).
				Warn("Failed to send order confirmation email")
		}
	}()
}
