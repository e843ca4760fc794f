package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"LogoForge/domain"
	"LogoForge/entities"
	"LogoForge/internal/utils/mailing"
	"LogoForge/pkg/brandkit"
	"LogoForge/pkg/logo"
	"LogoForge/pkg/payment"
	"LogoForge/pkg/product"
	"LogoForge/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CheckoutService interface {
		CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest, userID string) (*domain.CreateCheckoutResponse, error)
		VerifyPayment(ctx context.Context, sessionID string, userID string) (*domain.VerifyPaymentResponse, error)
		HandleNotification(ctx context.Context, notification domain.PaymentNotification) error
		GetUserPurchases(ctx context.Context, userID string) ([]*domain.PurchaseResponse, error)
		GetCompletedPurchases(ctx context.Context, userID string) ([]*domain.PurchaseResponse, error)
		GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStatsResponse, error)
	}

	checkoutService struct {
		purchaseRepository PurchaseRepository
		userRepository     user.UserRepository
		logoRepository     logo.LogoRepository
		brandKitRepository brandkit.BrandKitRepository
		productService     product.ProductService
		gateway            payment.PaymentGateway
	}
)

func NewCheckoutService(
	purchaseRepository PurchaseRepository,
	userRepository user.UserRepository,
	logoRepository logo.LogoRepository,
	brandKitRepository brandkit.BrandKitRepository,
	productService product.ProductService,
	gateway payment.PaymentGateway,
) CheckoutService {
	return &checkoutService{
		purchaseRepository: purchaseRepository,
		userRepository:     userRepository,
		logoRepository:     logoRepository,
		brandKitRepository: brandKitRepository,
		productService:     productService,
		gateway:            gateway,
	}
}

func (s *checkoutService) CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest, userID string) (*domain.CreateCheckoutResponse, error) {
	if req.LogoData.CompanyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}

	prod, err := s.productService.GetProductByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	buyer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// One purchase row per call. Repeated calls leave repeated pending
	// rows; abandoned sessions are harmless and simply never complete.
	purchase := &entities.Purchase{
		ID:          uuid.New(),
		UserID:      buyer.ID,
		PackageType: prod.ID,
		Amount:      fmt.Sprintf("%.2f", float64(prod.Price)/100),
		Currency:    "USD",
		Status:      entities.PurchaseStatusPending,
		BrandInputs: req.LogoData.ToEntity(),
	}
	if err := s.purchaseRepository.CreatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	sessionID := fmt.Sprintf("order-%s", purchase.ID.String())
	session, err := s.gateway.CreateSession(ctx, domain.CreateSessionRequest{
		SessionID:     sessionID,
		Amount:        int64(prod.Price),
		ProductName:   prod.Name,
		Description:   prod.Description,
		CustomerName:  buyer.Name,
		CustomerEmail: buyer.Email,
		Metadata: map[string]string{
			domain.MetaUserID:      buyer.ID.String(),
			domain.MetaProductID:   prod.ID,
			domain.MetaCompanyName: req.LogoData.CompanyName,
			domain.MetaTagline:     req.LogoData.Tagline,
			domain.MetaIndustry:    req.LogoData.Industry,
			domain.MetaStyle:       req.LogoData.Style,
			domain.MetaColorScheme: req.LogoData.ColorScheme,
		},
	})
	if err != nil {
		// The pending row stays behind; it is never reconciled and is
		// ignored by every read path that matters.
		return nil, domain.ErrPaymentFailed
	}

	purchase.SessionID = &sessionID
	if err := s.purchaseRepository.UpdatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	return &domain.CreateCheckoutResponse{
		CheckoutURL: session.RedirectURL,
		PurchaseID:  purchase.ID.String(),
	}, nil
}

func (s *checkoutService) VerifyPayment(ctx context.Context, sessionID string, userID string) (*domain.VerifyPaymentResponse, error) {
	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrPaymentFailed
	}

	// Not being paid yet is a normal polling outcome, not an error.
	if !session.Paid() {
		return &domain.VerifyPaymentResponse{
			Success: false,
			Status:  session.PaymentStatus,
		}, nil
	}

	logoData := domain.BrandInputsFromMetadata(session.Metadata)
	productID := session.Metadata[domain.MetaProductID]

	existing, err := s.purchaseRepository.GetPurchaseBySessionID(ctx, sessionID)
	switch {
	case err == nil:
		if existing.Status != entities.PurchaseStatusCompleted {
			s.completePurchase(ctx, existing, session.TransactionID)
		}
		if existing.BrandInputs.CompanyName != "" {
			data := domain.BrandInputsData{
				CompanyName: existing.BrandInputs.CompanyName,
				Tagline:     existing.BrandInputs.Tagline,
				Industry:    existing.BrandInputs.Industry,
				Style:       existing.BrandInputs.Style,
				ColorScheme: existing.BrandInputs.ColorScheme,
			}
			logoData = data
		}
		if existing.PackageType != "" {
			productID = existing.PackageType
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// The success page can be reached before any asynchronous callback
		// has run; reconstruct the purchase from the session metadata. The
		// existence check above keeps this idempotent per session id.
		if err := s.createCompletedPurchase(ctx, sessionID, session.TransactionID, userID, productID, logoData); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &domain.VerifyPaymentResponse{
		Success:   true,
		Status:    domain.SessionStatusPaid,
		ProductID: productID,
		LogoData:  &logoData,
	}, nil
}

func (s *checkoutService) HandleNotification(ctx context.Context, notification domain.PaymentNotification) error {
	if err := s.gateway.VerifyNotificationSignature(notification); err != nil {
		return err
	}

	// Statuses other than a settled payment are accepted and ignored.
	if !notification.Paid() {
		return nil
	}

	existing, err := s.purchaseRepository.GetPurchaseBySessionID(ctx, notification.OrderID)
	switch {
	case err == nil:
		if existing.Status != entities.PurchaseStatusCompleted {
			s.completePurchase(ctx, existing, notification.TransactionID)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		userID := notification.Metadata[domain.MetaUserID]
		productID := notification.Metadata[domain.MetaProductID]
		if userID == "" || productID == "" {
			log.Printf("payment notification %s carries no usable metadata, skipping", notification.OrderID)
			return nil
		}
		logoData := domain.BrandInputsFromMetadata(notification.Metadata)
		return s.createCompletedPurchase(ctx, notification.OrderID, notification.TransactionID, userID, productID, logoData)
	default:
		return err
	}
}

func (s *checkoutService) completePurchase(ctx context.Context, purchase *entities.Purchase, transactionID string) {
	purchase.Status = entities.PurchaseStatusCompleted
	if transactionID != "" {
		purchase.TransactionID = &transactionID
	}
	if err := s.purchaseRepository.UpdatePurchase(ctx, purchase); err != nil {
		log.Printf("failed to mark purchase %s completed: %v", purchase.ID, err)
		return
	}
	s.sendReceipt(ctx, purchase)
}

func (s *checkoutService) createCompletedPurchase(ctx context.Context, sessionID, transactionID, userID, productID string, logoData domain.BrandInputsData) error {
	prod, err := s.productService.GetProductByID(productID)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	purchase := &entities.Purchase{
		ID:          uuid.New(),
		UserID:      userUUID,
		PackageType: prod.ID,
		Amount:      fmt.Sprintf("%.2f", float64(prod.Price)/100),
		Currency:    "USD",
		SessionID:   &sessionID,
		Status:      entities.PurchaseStatusCompleted,
		BrandInputs: logoData.ToEntity(),
	}
	if transactionID != "" {
		purchase.TransactionID = &transactionID
	}

	if err := s.purchaseRepository.CreatePurchase(ctx, purchase); err != nil {
		return err
	}
	s.sendReceipt(ctx, purchase)
	return nil
}

// sendReceipt is best effort: a receipt that cannot be delivered never
// blocks reconciliation.
func (s *checkoutService) sendReceipt(ctx context.Context, purchase *entities.Purchase) {
	buyer, err := s.userRepository.GetUserByID(ctx, purchase.UserID.String())
	if err != nil {
		log.Printf("failed to load buyer for receipt: %v", err)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your purchase! Your <b>%s</b> package ($%s) is ready for logo generation.</p>",
		buyer.Name, purchase.PackageType, purchase.Amount,
	)
	if err := mailing.SendMail(buyer.Email, "Your LogoForge receipt", body); err != nil {
		log.Printf("failed to send receipt email: %v", err)
	}
}

func (s *checkoutService) GetUserPurchases(ctx context.Context, userID string) ([]*domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetUserPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(purchases), nil
}

func (s *checkoutService) GetCompletedPurchases(ctx context.Context, userID string) ([]*domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetCompletedPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(purchases), nil
}

func (s *checkoutService) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStatsResponse, error) {
	totalLogos, err := s.logoRepository.CountUserLogos(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalKits, err := s.brandKitRepository.CountUserBrandKits(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalPurchases, err := s.purchaseRepository.CountCompletedPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStatsResponse{
		TotalLogos:     totalLogos,
		TotalBrandKits: totalKits,
		TotalPurchases: totalPurchases,
	}, nil
}

func toPurchaseResponses(purchases []*entities.Purchase) []*domain.PurchaseResponse {
	result := make([]*domain.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		result = append(result, &domain.PurchaseResponse{
			ID:          p.ID.String(),
			PackageType: p.PackageType,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Status:      p.Status,
			BrandInputs: p.BrandInputs,
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return result
}
