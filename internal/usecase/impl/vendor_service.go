package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dashboardRecentOrders    = 10
	defaultDirectoryPageSize = 20
	maxDirectoryPageSize     = 100
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo  repository.VendorRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	chatRepo    repository.ChatRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(
	vendorRepo repository.VendorRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	offerRepo repository.OfferRepository,
	chatRepo repository.ChatRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		offerRepo:   offerRepo,
		chatRepo:    chatRepo,
		qrService:   qrService,
		logger:      logger,
	}
}

// GetDashboard aggregates the vendor's profile, recent orders, order
// counters, catalog size and unread message count.
func (srv *vendorService) GetDashboard(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorDashboard, error) {
	profile, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	recentOrders, err := srv.orderRepo.ListByVendor(ctx, vendorID, dashboardRecentOrders, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	total, err := srv.orderRepo.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	pending, err := srv.orderRepo.CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	accepted, err := srv.orderRepo.CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusAccepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accepted orders")
	}

	completed, err := srv.orderRepo.CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed orders")
	}

	products, err := srv.productRepo.ListByVendor(ctx, vendorID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	unread, err := srv.chatRepo.CountUnread(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	var successRate float64
	if total > 0 {
		successRate = float64(completed) / float64(total) * 100
	}

	return &usecase.VendorDashboard{
		Profile:         profile,
		RecentOrders:    recentOrders,
		TotalOrders:     total,
		PendingOrders:   pending,
		AcceptedOrders:  accepted,
		CompletedOrders: completed,
		ProductCount:    len(products),
		SuccessRate:     successRate,
		UnreadMessages:  unread,
	}, nil
}

// UpdateProfile overwrites the vendor's mutable profile fields.
func (srv *vendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *usecase.VendorProfileInput) (*entity.VendorProfile, error) {
	profile, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	profile.ShopName = input.ShopName
	profile.Category = input.Category
	profile.Description = input.Description
	profile.BusinessType = input.BusinessType
	profile.ContactInfo = input.ContactInfo
	profile.ProfileImage = input.ProfileImage
	profile.LocationLat = input.LocationLat
	profile.LocationLng = input.LocationLng
	profile.LocationAddress = input.LocationAddress

	if err := srv.vendorRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor profile")
	}
	srv.logger.Debug("Vendor profile updated", "vendorID", vendorID)

	return profile, nil
}

// SetOnline flips the storefront visibility flag.
func (srv *vendorService) SetOnline(ctx context.Context, vendorID uuid.UUID, isOnline bool) error {
	if err := srv.vendorRepo.UpdateOnlineStatus(ctx, vendorID, isOnline); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return errors.Wrap(err, "failed to update online status")
	}
	srv.logger.Info("Vendor online status changed", "vendorID", vendorID, "isOnline", isOnline)

	return nil
}

// ListDirectory returns online vendors for customer discovery.
func (srv *vendorService) ListDirectory(ctx context.Context, category string, limit, offset int) ([]*entity.VendorProfile, error) {
	if limit <= 0 {
		limit = defaultDirectoryPageSize
	}
	if limit > maxDirectoryPageSize {
		limit = maxDirectoryPageSize
	}
	if offset < 0 {
		offset = 0
	}

	vendors, err := srv.vendorRepo.ListOnline(ctx, category, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor directory")
	}

	return vendors, nil
}

// GetStorefront returns a vendor's profile with available products and
// active offers.
func (srv *vendorService) GetStorefront(ctx context.Context, vendorID uuid.UUID) (*usecase.Storefront, error) {
	profile, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByVendor(ctx, vendorID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront products")
	}

	offers, err := srv.offerRepo.ListByVendor(ctx, vendorID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront offers")
	}

	return &usecase.Storefront{
		Profile:  profile,
		Products: products,
		Offers:   offers,
	}, nil
}

// GenerateStorefrontQR renders a shareable QR code for the vendor's storefront.
func (srv *vendorService) GenerateStorefrontQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	if _, err := srv.findVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	qrBytes, err := srv.qrService.GenerateStorefrontQR(vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return qrBytes, nil
}

func (srv *vendorService) findVendor(ctx context.Context, vendorID uuid.UUID) (*entity.VendorProfile, error) {
	profile, err := srv.vendorRepo.FindByAccountID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return profile, nil
}
