package domain

// Session metadata keys passed to the payment gateway so a session is
// self-describing and reconciliation needs no prior local lookup.
const (
	MetaUserID      = "user_id"
	MetaProductID   = "product_id"
	MetaCompanyName = "company_name"
	MetaTagline     = "tagline"
	MetaIndustry    = "industry"
	MetaStyle       = "style"
	MetaColorScheme = "color_scheme"
)

const SessionStatusPaid = "paid"

type (
	CreateSessionRequest struct {
		SessionID     string
		Amount        int64
		ProductName   string
		Description   string
		CustomerName  string
		CustomerEmail string
		Metadata      map[string]string
	}

	PaymentSession struct {
		SessionID   string
		RedirectURL string
	}

	SessionStatus struct {
		SessionID     string
		PaymentStatus string // "paid" or the gateway's raw status
		TransactionID string
		Metadata      map[string]string
	}

	// PaymentNotification is the signed callback payload the gateway posts
	// to the webhook endpoint.
	PaymentNotification struct {
		OrderID           string            `json:"order_id"`
		StatusCode        string            `json:"status_code"`
		GrossAmount       string            `json:"gross_amount"`
		SignatureKey      string            `json:"signature_key"`
		TransactionID     string            `json:"transaction_id"`
		TransactionStatus string            `json:"transaction_status"`
		FraudStatus       string            `json:"fraud_status"`
		Metadata          map[string]string `json:"metadata"`
	}
)

func (s *SessionStatus) Paid() bool {
	return s.PaymentStatus == SessionStatusPaid
}

// Paid reports whether the notification describes a settled payment.
func (n PaymentNotification) Paid() bool {
	return n.TransactionStatus == "settlement" || n.TransactionStatus == "capture"
}

// BrandInputsFromMetadata rebuilds the brand inputs embedded in session
// metadata, so reconciliation does not require a prior local lookup.
func BrandInputsFromMetadata(metadata map[string]string) BrandInputsData {
	return BrandInputsData{
		CompanyName: metadata[MetaCompanyName],
		Tagline:     metadata[MetaTagline],
		Industry:    metadata[MetaIndustry],
		Style:       metadata[MetaStyle],
		ColorScheme: metadata[MetaColorScheme],
	}
}
