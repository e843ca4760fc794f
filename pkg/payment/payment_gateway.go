package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"LogoForge/domain"
	"LogoForge/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentGateway is the narrow surface this system needs from the
	// hosted-payment provider.
	PaymentGateway interface {
		CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.PaymentSession, error)
		RetrieveSession(ctx context.Context, sessionID string) (*domain.SessionStatus, error)
		VerifyNotificationSignature(notification domain.PaymentNotification) error
	}

	midtransGateway struct {
		snapClient snap.Client
		coreClient coreapi.Client
		serverKey  string
	}
)

func NewPaymentGateway() PaymentGateway {
	serverKey := utils.GetConfig("SERVER_KEY")
	clientKey := utils.GetConfig("CLIENT_KEY")

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	var c coreapi.Client
	c.New(serverKey, env)

	midtrans.ServerKey = serverKey
	midtrans.ClientKey = clientKey
	midtrans.Environment = env

	return &midtransGateway{
		snapClient: s,
		coreClient: c,
		serverKey:  serverKey,
	}
}

func (g *midtransGateway) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.PaymentSession, error) {
	appURL := utils.GetConfig("APP_URL")

	param := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.SessionID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.SessionID,
				Name:  req.ProductName,
				Price: req.Amount,
				Qty:   1,
			},
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/checkout/success?session_id=%s", appURL, req.SessionID),
		},
		Metadata: req.Metadata,
	}

	resp, err := g.snapClient.CreateTransaction(param)
	if err != nil {
		return nil, err
	}
	if resp.RedirectURL == "" {
		return nil, domain.ErrPaymentFailed
	}

	return &domain.PaymentSession{
		SessionID:   req.SessionID,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (g *midtransGateway) RetrieveSession(ctx context.Context, sessionID string) (*domain.SessionStatus, error) {
	resp, err := g.coreClient.CheckTransactionWithMap(sessionID)
	if err != nil {
		return nil, err
	}

	status := &domain.SessionStatus{
		SessionID:     sessionID,
		PaymentStatus: mapTransactionStatus(stringField(resp, "transaction_status")),
		TransactionID: stringField(resp, "transaction_id"),
		Metadata:      metadataField(resp),
	}
	return status, nil
}

func (g *midtransGateway) VerifyNotificationSignature(notification domain.PaymentNotification) error {
	payload := notification.OrderID + notification.StatusCode + notification.GrossAmount + g.serverKey
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(notification.SignatureKey)) != 1 {
		return domain.ErrInvalidSignature
	}
	return nil
}

// mapTransactionStatus collapses the provider's settled states into "paid"
// and passes every other status through raw.
func mapTransactionStatus(status string) string {
	switch status {
	case "settlement", "capture":
		return domain.SessionStatusPaid
	default:
		return status
	}
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func metadataField(m map[string]interface{}) map[string]string {
	metadata := make(map[string]string)
	raw, ok := m["metadata"].(map[string]interface{})
	if !ok {
		return metadata
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}
	return metadata
}
