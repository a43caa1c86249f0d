package batch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type (
	BatchMutationService interface {
		AddBatches(ctx context.Context, actor domain.Actor, req domain.AddBatchesRequest) (domain.AddBatchesResponse, error)
		UpdateBatch(ctx context.Context, actor domain.Actor, id string, req domain.UpdateBatchRequest) (domain.BatchResponse, error)
		DeleteBatch(ctx context.Context, actor domain.Actor, id string) error
		OpenSession(ctx context.Context, actor domain.Actor, req domain.OpenSessionRequest) (domain.OpenSessionResponse, error)
		AddToSession(ctx context.Context, actor domain.Actor, req domain.AddToSessionRequest) (domain.AddToSessionResponse, error)
	}

	batchMutationService struct {
		batchRepository BatchRepository
	}
)

func NewBatchMutationService(batchRepository BatchRepository) BatchMutationService {
	return &batchMutationService{batchRepository: batchRepository}
}

// AddBatches records a set of batches against an existing session and product.
// The SKU must already exist in the catalog; this path never creates products.
// Everything, audit entries included, commits or rolls back as one unit.
func (s *batchMutationService) AddBatches(ctx context.Context, actor domain.Actor, req domain.AddBatchesRequest) (domain.AddBatchesResponse, error) {
	if len(req.Batches) == 0 {
		return domain.AddBatchesResponse{}, domain.ErrEmptyBatchSet
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return domain.AddBatchesResponse{}, domain.ErrParseUUID
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return domain.AddBatchesResponse{}, domain.ErrParseUUID
	}

	var response domain.AddBatchesResponse
	err = s.batchRepository.Transaction(ctx, func(repo BatchRepository) error {
		product, err := repo.GetProductBySKU(ctx, req.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotRegistered
			}
			return err
		}

		session, err := repo.GetSessionByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSessionNotFound
			}
			return err
		}

		if err := authorize(actor, session); err != nil {
			return err
		}

		for _, item := range req.Batches {
			expiryDate, err := parseExpiry(item.ExpiryDate)
			if err != nil {
				return err
			}
			if item.Quantity <= 0 {
				return domain.ErrInvalidQuantity
			}

			newBatch := &entities.Batch{
				ID:         uuid.New(),
				ProductID:  product.ID,
				ExpiryDate: expiryDate,
				Quantity:   item.Quantity,
				SessionID:  &session.ID,
			}
			if err := repo.CreateBatch(ctx, newBatch); err != nil {
				return err
			}

			entry := &entities.AuditLog{
				ID:        uuid.New(),
				SessionID: &session.ID,
				BatchID:   newBatch.ID,
				Action:    ActionAdd,
				NewValue:  snapshot(product, newBatch),
				UserID:    actorID,
			}
			if err := repo.CreateAuditEntry(ctx, entry); err != nil {
				return err
			}

			response.Batches = append(response.Batches, batchResponse(product, newBatch))
		}

		return repo.AddSessionItems(ctx, session.ID, len(req.Batches))
	})
	if err != nil {
		return domain.AddBatchesResponse{}, err
	}
	return response, nil
}

func (s *batchMutationService) UpdateBatch(ctx context.Context, actor domain.Actor, id string, req domain.UpdateBatchRequest) (domain.BatchResponse, error) {
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return domain.BatchResponse{}, domain.ErrParseUUID
	}

	var response domain.BatchResponse
	err = s.batchRepository.Transaction(ctx, func(repo BatchRepository) error {
		existing, session, err := loadBatchWithSession(ctx, repo, id)
		if err != nil {
			return err
		}

		if err := authorize(actor, session); err != nil {
			return err
		}

		expiryDate, err := parseExpiry(req.ExpiryDate)
		if err != nil {
			return err
		}
		if req.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		oldValue := snapshot(existing.Product, existing)

		existing.ExpiryDate = expiryDate
		existing.Quantity = req.Quantity
		if err := repo.SaveBatch(ctx, existing); err != nil {
			return err
		}

		entry := &entities.AuditLog{
			ID:        uuid.New(),
			SessionID: existing.SessionID,
			BatchID:   existing.ID,
			Action:    ActionUpdate,
			OldValue:  oldValue,
			NewValue:  snapshot(existing.Product, existing),
			UserID:    actorID,
		}
		if err := repo.CreateAuditEntry(ctx, entry); err != nil {
			return err
		}

		response = batchResponse(existing.Product, existing)
		return nil
	})
	if err != nil {
		return domain.BatchResponse{}, err
	}
	return response, nil
}

func (s *batchMutationService) DeleteBatch(ctx context.Context, actor domain.Actor, id string) error {
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.batchRepository.Transaction(ctx, func(repo BatchRepository) error {
		existing, session, err := loadBatchWithSession(ctx, repo, id)
		if err != nil {
			return err
		}

		if err := authorize(actor, session); err != nil {
			return err
		}

		entry := &entities.AuditLog{
			ID:        uuid.New(),
			SessionID: existing.SessionID,
			BatchID:   existing.ID,
			Action:    ActionDelete,
			OldValue:  snapshot(existing.Product, existing),
			UserID:    actorID,
		}
		if err := repo.CreateAuditEntry(ctx, entry); err != nil {
			return err
		}

		return repo.DeleteBatch(ctx, existing)
	})
}

func (s *batchMutationService) OpenSession(ctx context.Context, actor domain.Actor, req domain.OpenSessionRequest) (domain.OpenSessionResponse, error) {
	userID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return domain.OpenSessionResponse{}, domain.ErrParseUUID
	}

	if _, err := s.batchRepository.GetSessionByKey(ctx, req.SessionKey); err == nil {
		return domain.OpenSessionResponse{}, domain.ErrSessionKeyTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OpenSessionResponse{}, err
	}

	session := &entities.InventorySession{
		ID:         uuid.New(),
		SessionKey: req.SessionKey,
		UserID:     userID,
	}
	if err := s.batchRepository.CreateSession(ctx, session); err != nil {
		return domain.OpenSessionResponse{}, err
	}

	return domain.OpenSessionResponse{
		SessionID:  session.ID.String(),
		SessionKey: session.SessionKey,
	}, nil
}

// AddToSession is the inventory-entry flow: it reuses or opens the keyed
// session and records one batch per entry, registering unknown SKUs in the
// catalog on the fly. Unlike AddBatches, a missing product is not an error.
func (s *batchMutationService) AddToSession(ctx context.Context, actor domain.Actor, req domain.AddToSessionRequest) (domain.AddToSessionResponse, error) {
	if len(req.Entries) == 0 {
		return domain.AddToSessionResponse{}, domain.ErrEmptyBatchSet
	}

	userID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return domain.AddToSessionResponse{}, domain.ErrParseUUID
	}

	var response domain.AddToSessionResponse
	err = s.batchRepository.Transaction(ctx, func(repo BatchRepository) error {
		session, err := repo.GetSessionByKey(ctx, req.SessionKey)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			session = &entities.InventorySession{
				ID:         uuid.New(),
				SessionKey: req.SessionKey,
				UserID:     userID,
			}
			if err := repo.CreateSession(ctx, session); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := authorize(actor, session); err != nil {
			return err
		}

		for _, item := range req.Entries {
			expiryDate, err := parseExpiry(item.ExpiryDate)
			if err != nil {
				return err
			}
			if item.Quantity <= 0 {
				return domain.ErrInvalidQuantity
			}

			product, err := repo.GetProductBySKU(ctx, item.SKU)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				name := item.Name
				if name == "" {
					name = item.SKU
				}
				product = &entities.Product{
					ID:   uuid.New(),
					SKU:  item.SKU,
					Name: name,
				}
				if err := repo.CreateProduct(ctx, product); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			newBatch := &entities.Batch{
				ID:         uuid.New(),
				ProductID:  product.ID,
				ExpiryDate: expiryDate,
				Quantity:   item.Quantity,
				SessionID:  &session.ID,
			}
			if err := repo.CreateBatch(ctx, newBatch); err != nil {
				return err
			}

			entry := &entities.AuditLog{
				ID:        uuid.New(),
				SessionID: &session.ID,
				BatchID:   newBatch.ID,
				Action:    ActionAdd,
				NewValue:  snapshot(product, newBatch),
				UserID:    userID,
			}
			if err := repo.CreateAuditEntry(ctx, entry); err != nil {
				return err
			}

			response.Batches = append(response.Batches, batchResponse(product, newBatch))
		}

		if err := repo.AddSessionItems(ctx, session.ID, len(req.Entries)); err != nil {
			return err
		}

		response.SessionID = session.ID.String()
		response.ItemCount = session.ItemCount + len(req.Entries)
		return nil
	})
	if err != nil {
		return domain.AddToSessionResponse{}, err
	}
	return response, nil
}

func loadBatchWithSession(ctx context.Context, repo BatchRepository, id string) (*entities.Batch, *entities.InventorySession, error) {
	existing, err := repo.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrBatchNotFound
		}
		return nil, nil, err
	}

	if existing.SessionID == nil {
		return nil, nil, domain.ErrSessionNotFound
	}
	session, err := repo.GetSessionByID(ctx, *existing.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrSessionNotFound
		}
		return nil, nil, err
	}

	return existing, session, nil
}

func authorize(actor domain.Actor, session *entities.InventorySession) error {
	if actor.IsAdmin || session.UserID.String() == actor.UserID {
		return nil
	}
	return domain.ErrForbidden
}

func parseExpiry(value string) (time.Time, error) {
	expiryDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return expiryDate, nil
}

func snapshot(product *entities.Product, b *entities.Batch) datatypes.JSON {
	snap := domain.BatchSnapshot{
		ExpiryDate: b.ExpiryDate.Format("2006-01-02"),
		Quantity:   b.Quantity,
	}
	if product != nil {
		snap.SKU = product.SKU
		snap.Name = product.Name
	}
	raw, _ := json.Marshal(snap)
	return raw
}

func batchResponse(product *entities.Product, b *entities.Batch) domain.BatchResponse {
	response := domain.BatchResponse{
		ID:         b.ID.String(),
		ProductID:  b.ProductID.String(),
		ExpiryDate: b.ExpiryDate,
		Quantity:   b.Quantity,
	}
	if product != nil {
		response.SKU = product.SKU
	}
	if b.SessionID != nil {
		response.SessionID = b.SessionID.String()
	}
	return response
}
