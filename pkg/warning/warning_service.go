package warning

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"
	"FreshStock-Backend/pkg/expiry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// MailSender delivers a rendered digest. Wired to mailing.SendMail in the
	// app config, replaced by a stub in tests.
	MailSender func(toEmail string, subject string, body string) error

	WarningService interface {
		ScanWarnings(ctx context.Context, now time.Time) (domain.ScanWarningsResponse, error)
		GetWarnings(ctx context.Context, level string, resolved bool, limit int) ([]domain.WarningResponse, error)
		ResolveWarning(ctx context.Context, id string) error
		GetConfig(ctx context.Context) (domain.WarningConfigResponse, error)
		UpdateConfig(ctx context.Context, actor domain.Actor, req domain.UpdateWarningConfigRequest) error
		SendWarningDigest(ctx context.Context, actor domain.Actor, req domain.SendDigestRequest) error
	}

	warningService struct {
		warningRepository WarningRepository
		sendMail          MailSender
	}
)

func NewWarningService(warningRepository WarningRepository, sendMail MailSender) WarningService {
	return &warningService{
		warningRepository: warningRepository,
		sendMail:          sendMail,
	}
}

// ScanWarnings runs the two-phase sweep. Phase A raises expiry warnings for
// every still-sellable batch inside the configured windows; phase B raises
// stock warnings per product aggregate. Both phases dedup per calendar day, so
// re-running within the same day is a no-op. Two overlapping scans can still
// double-insert between the dedup check and the commit; that duplicate is
// bounded and clears with the next day's dedup key.
func (s *warningService) ScanWarnings(ctx context.Context, now time.Time) (domain.ScanWarningsResponse, error) {
	cfg, err := s.warningRepository.GetConfig(ctx)
	if err != nil {
		return domain.ScanWarningsResponse{}, domain.ErrStoreUnavailable
	}

	batches, err := s.warningRepository.ListBatchesExpiringAfter(ctx, now)
	if err != nil {
		return domain.ScanWarningsResponse{}, domain.ErrStoreUnavailable
	}

	created := 0
	skipped := 0

	for _, batch := range batches {
		daysToExpiry := expiry.DaysToExpiry(batch.ExpiryDate, now)
		level, ok := LevelForExpiry(daysToExpiry, cfg)
		if !ok {
			continue
		}

		exists, err := s.warningRepository.HasExpiryWarningToday(ctx, batch.ProductID, batch.ID, level, now)
		if err != nil {
			log.Printf("warning scan: dedup check failed for batch %s: %v", batch.ID, err)
			skipped++
			continue
		}
		if exists {
			continue
		}

		warning := &entities.WarningLog{
			ID:           uuid.New(),
			ProductID:    batch.ProductID,
			BatchID:      &batch.ID,
			WarningLevel: level,
			WarningType:  TypeExpiry,
			Message:      expiryMessage(batch, daysToExpiry),
		}
		if err := s.warningRepository.CreateWarning(ctx, warning); err != nil {
			log.Printf("warning scan: insert failed for batch %s: %v", batch.ID, err)
			skipped++
			continue
		}
		created++
	}

	products, err := s.warningRepository.ListProducts(ctx)
	if err != nil {
		return domain.ScanWarningsResponse{GeneratedCount: created}, domain.ErrStoreUnavailable
	}

	for _, product := range products {
		total := 0
		for _, batch := range product.Batches {
			total += batch.Quantity
		}

		level, ok := LevelForStock(total, cfg)
		if !ok {
			continue
		}

		exists, err := s.warningRepository.HasStockWarningToday(ctx, product.ID, now)
		if err != nil {
			log.Printf("warning scan: dedup check failed for product %s: %v", product.SKU, err)
			skipped++
			continue
		}
		if exists {
			continue
		}

		warning := &entities.WarningLog{
			ID:           uuid.New(),
			ProductID:    product.ID,
			WarningLevel: level,
			WarningType:  TypeStock,
			Message:      stockMessage(product, total),
		}
		if err := s.warningRepository.CreateWarning(ctx, warning); err != nil {
			log.Printf("warning scan: insert failed for product %s: %v", product.SKU, err)
			skipped++
			continue
		}
		created++
	}

	if skipped > 0 {
		log.Printf("warning scan: %d candidates skipped on store errors", skipped)
	}

	return domain.ScanWarningsResponse{GeneratedCount: created}, nil
}

func expiryMessage(batch *entities.Batch, daysToExpiry int) string {
	name := batch.ProductID.String()
	sku := ""
	if batch.Product != nil {
		name = batch.Product.Name
		sku = batch.Product.SKU
	}
	return fmt.Sprintf("%s (%s) expires in %d day(s) on %s",
		name, sku, daysToExpiry, batch.ExpiryDate.Format("2006-01-02"))
}

func stockMessage(product *entities.Product, total int) string {
	if total == 0 {
		return fmt.Sprintf("%s (%s) is out of stock", product.Name, product.SKU)
	}
	return fmt.Sprintf("%s (%s) is low on stock: %d left", product.Name, product.SKU, total)
}

func (s *warningService) GetWarnings(ctx context.Context, level string, resolved bool, limit int) ([]domain.WarningResponse, error) {
	warnings, err := s.warningRepository.GetWarnings(ctx, level, resolved, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		item := domain.WarningResponse{
			ID:           w.ID.String(),
			ProductID:    w.ProductID.String(),
			WarningLevel: w.WarningLevel,
			WarningType:  w.WarningType,
			Message:      w.Message,
			IsResolved:   w.IsResolved,
			CreatedAt:    w.CreatedAt,
		}
		if w.BatchID != nil {
			item.BatchID = w.BatchID.String()
		}
		if w.Product != nil {
			item.SKU = w.Product.SKU
		}
		response = append(response, item)
	}
	return response, nil
}

// ResolveWarning is the only path that flips is_resolved. Rescans never
// resolve anything.
func (s *warningService) ResolveWarning(ctx context.Context, id string) error {
	warning, err := s.warningRepository.GetWarningByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWarningNotFound
		}
		return err
	}

	warning.IsResolved = true
	return s.warningRepository.SaveWarning(ctx, warning)
}

func (s *warningService) GetConfig(ctx context.Context) (domain.WarningConfigResponse, error) {
	cfg, err := s.warningRepository.GetConfig(ctx)
	if err != nil {
		return domain.WarningConfigResponse{}, err
	}

	return domain.WarningConfigResponse{
		WarningDaysLevel1: cfg.WarningDaysLevel1,
		WarningDaysLevel2: cfg.WarningDaysLevel2,
		WarningDaysLevel3: cfg.WarningDaysLevel3,
		LowStockThreshold: cfg.LowStockThreshold,
	}, nil
}

func (s *warningService) UpdateConfig(ctx context.Context, actor domain.Actor, req domain.UpdateWarningConfigRequest) error {
	if !actor.IsAdmin {
		return domain.ErrUserNotAllowed
	}

	cfg, err := s.warningRepository.GetConfig(ctx)
	if err != nil {
		return err
	}

	if req.WarningDaysLevel1 != nil {
		cfg.WarningDaysLevel1 = *req.WarningDaysLevel1
	}
	if req.WarningDaysLevel2 != nil {
		cfg.WarningDaysLevel2 = *req.WarningDaysLevel2
	}
	if req.WarningDaysLevel3 != nil {
		cfg.WarningDaysLevel3 = *req.WarningDaysLevel3
	}
	if req.LowStockThreshold != nil {
		cfg.LowStockThreshold = *req.LowStockThreshold
	}

	return s.warningRepository.SaveConfig(ctx, cfg)
}

func (s *warningService) SendWarningDigest(ctx context.Context, actor domain.Actor, req domain.SendDigestRequest) error {
	if !actor.IsAdmin {
		return domain.ErrUserNotAllowed
	}

	warnings, err := s.warningRepository.GetWarnings(ctx, LevelCritical, false, 100)
	if err != nil {
		return err
	}

	var body strings.Builder
	body.WriteString("<h3>Unresolved critical warnings</h3><ul>")
	for _, w := range warnings {
		body.WriteString(fmt.Sprintf("<li>%s</li>", w.Message))
	}
	if len(warnings) == 0 {
		body.WriteString("<li>none</li>")
	}
	body.WriteString("</ul>")

	subject := fmt.Sprintf("FreshStock: %d unresolved critical warning(s)", len(warnings))
	return s.sendMail(req.Recipient, subject, body.String())
}
