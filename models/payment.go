package models

const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
	PaymentStatusPending = "pending"
)

type PaymentInitRequest struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
}

type PaymentAuthorization struct {
	AuthorizationURL string `json:"authorization_url"`
}

// PaystackPayment is the subset of the gateway's verification payload the
// storefront acts on. Status may carry gateway-defined values beyond the
// constants above; anything other than "success" is treated as not paid.
type PaystackPayment struct {
	ID              int64  `json:"id"`
	Domain          string `json:"domain"`
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	Message         string `json:"message"`
	GatewayResponse string `json:"gateway_response"`
	PaidAt          string `json:"paid_at"`
	CreatedAt       string `json:"created_at"`
	Channel         string `json:"channel"`
	Currency        string `json:"currency"`
	Fees            int64  `json:"fees"`
}
