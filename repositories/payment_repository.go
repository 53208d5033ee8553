package repositories

import (
	"biscenic-store/models"
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
)

const (
	verifyMaxAttempts  = 3
	verifyInitialDelay = 500 * time.Millisecond
)

type PaymentRepository struct {
	client *Client
}

func NewPaymentRepository(client *Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

// InitializePayment forwards to the gateway proxy and returns the
// authorization URL the customer must be redirected to. Never retried:
// a duplicate initialize risks a duplicate charge.
func (r *PaymentRepository) InitializePayment(ctx context.Context, email string, amount int64) (*models.PaymentAuthorization, error) {
	req := models.PaymentInitRequest{Email: email, Amount: amount}

	var auth models.PaymentAuthorization
	if err := r.client.doJSON(ctx, http.MethodPost, "/payments/initialize", "", req, &auth, true); err != nil {
		return nil, err
	}
	return &auth, nil
}

// VerifyPayment queries the gateway for the payment carrying reference.
// Verification may race the gateway's settlement, so transport and 5xx
// failures get a small bounded retry with backoff. A gateway-reported
// non-success status is a valid answer, not a failure, and is returned
// as-is for the caller to act on.
func (r *PaymentRepository) VerifyPayment(ctx context.Context, reference string) (*models.PaystackPayment, error) {
	path := "/payments/verify?reference=" + url.QueryEscape(reference)

	var lastErr error
	delay := verifyInitialDelay

	for attempt := 1; attempt <= verifyMaxAttempts; attempt++ {
		var payment models.PaystackPayment
		err := r.client.getJSON(ctx, path, "", &payment)
		if err == nil {
			return &payment, nil
		}
		lastErr = err

		if !retryableVerifyError(err) || attempt == verifyMaxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return nil, lastErr
}

func retryableVerifyError(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	// Transport-level failure.
	return true
}
