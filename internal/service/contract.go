package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"gorm.io/gorm"

	"parts_office/internal/auth"
	"parts_office/internal/model"
	"parts_office/internal/store"
)

// ContractEvents receives contract mutations after they are committed.
// The real sink is the Redis Stream outbox; tests pass nil.
type ContractEvents interface {
	ContractCreated(ctx context.Context, c *model.Contract) error
	ContractDeleted(ctx context.Context, c *model.Contract) error
}

// StockCache mirrors product counts for the fast stock read endpoint.
type StockCache interface {
	Refresh(ctx context.Context, productID string, count int64) error
}

// CreateContractInput is the create payload. Products are line items:
// duplicates are allowed, each occurrence is one unit sold.
type CreateContractInput struct {
	Products    []string `json:"product" binding:"required,min=1"`
	ClientPhone string   `json:"client" binding:"required"`
	Discount    int64    `json:"discount"`
	Paytype     string   `json:"paytype"`
}

// UpdateContractInput is the partial update payload; nil fields keep
// their prior values.
type UpdateContractInput struct {
	Products    []string `json:"product"`
	ClientPhone *string  `json:"client"`
	Discount    *int64   `json:"discount"`
	Paytype     *string  `json:"paytype"`
}

// ContractService orchestrates the contract workflow: resolve vendor
// and client, reserve stock, classify payment, apply the discount and
// persist. Steps 4-7 run inside one transaction, so a later-step
// failure rolls back every stock decrement already applied.
type ContractService struct {
	db        *gorm.DB
	admins    *store.Store[model.Admin]
	contracts *store.Store[model.Contract]
	events    ContractEvents
	cache     StockCache
}

func NewContractService(db *gorm.DB, events ContractEvents, cache StockCache) *ContractService {
	return &ContractService{
		db:        db,
		admins:    store.New[model.Admin](db),
		contracts: store.New[model.Contract](db),
		events:    events,
		cache:     cache,
	}
}

func (s *ContractService) resolveVendor(actor auth.Actor) (*model.Admin, error) {
	admin, err := s.admins.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrMalformedID) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func findClientByPhone(tx *gorm.DB, phone string) (*model.Client, error) {
	var client model.Client
	if err := tx.First(&client, "phone_number = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func contractItems(contractID string, productIDs []string) []model.ContractItem {
	items := make([]model.ContractItem, 0, len(productIDs))
	for i, pid := range productIDs {
		items = append(items, model.ContractItem{
			ContractID: contractID,
			Position:   i,
			ProductID:  pid,
		})
	}
	return items
}

// Create runs the whole workflow for a new contract and returns it with
// client, vendor and products resolved inline.
func (s *ContractService) Create(ctx context.Context, actor auth.Actor, in CreateContractInput) (*model.Contract, error) {
	vendor, err := s.resolveVendor(actor)
	if err != nil {
		return nil, err
	}

	client, err := findClientByPhone(s.db, in.ClientPhone)
	if err != nil {
		return nil, err
	}

	if in.Paytype == "" {
		in.Paytype = string(model.PayCash)
	}

	var contract model.Contract
	err = s.db.Transaction(func(tx *gorm.DB) error {
		total, err := ReserveStock(tx, in.Products)
		if err != nil {
			return err
		}

		paytype, err := model.ParsePayType(in.Paytype)
		if err != nil {
			return err
		}

		price, err := ApplyDiscount(total, in.Discount)
		if err != nil {
			return err
		}

		contract = model.Contract{
			ClientID: client.ID,
			VendorID: vendor.ID,
			Discount: in.Discount,
			Paytype:  paytype,
			Total:    total,
			Price:    price,
		}
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}
		return tx.Create(contractItems(contract.ID, in.Products)).Error
	})
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, in.Products)
	if s.events != nil {
		if err := s.events.ContractCreated(ctx, &contract); err != nil {
			log.Printf("contract created event: %v", err)
		}
	}
	return s.Get(contract.ID)
}

// Get resolves one contract with its references populated.
func (s *ContractService) Get(id string) (*model.Contract, error) {
	contract, err := s.contracts.FindByID(id, "Client", "Vendor", "Items", "Items.Product")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	sortItems(contract)
	return contract, nil
}

// List returns every contract, populated.
func (s *ContractService) List() ([]model.Contract, error) {
	contracts, err := s.contracts.List("Client", "Vendor", "Items", "Items.Product")
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		sortItems(&contracts[i])
	}
	return contracts, nil
}

// sortItems restores line-item input order after preloading.
func sortItems(c *model.Contract) {
	sort.Slice(c.Items, func(i, j int) bool { return c.Items[i].Position < c.Items[j].Position })
}

// Update applies a partial payload. A new product list is re-reserved
// and the price recomputed; units taken for the old list are not
// restored. When the payload omits the discount, the stored discount
// is reused for the recomputation.
func (s *ContractService) Update(ctx context.Context, actor auth.Actor, id string, in UpdateContractInput) (*model.Contract, error) {
	contract, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveVendor(actor); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if in.ClientPhone != nil {
			client, err := findClientByPhone(tx, *in.ClientPhone)
			if err != nil {
				return err
			}
			contract.ClientID = client.ID
		}

		if len(in.Products) > 0 {
			total, err := ReserveStock(tx, in.Products)
			if err != nil {
				return err
			}
			contract.Total = total
			if err := tx.Where("contract_id = ?", contract.ID).
				Delete(&model.ContractItem{}).Error; err != nil {
				return err
			}
			if err := tx.Create(contractItems(contract.ID, in.Products)).Error; err != nil {
				return err
			}
		}

		if in.Paytype != nil {
			paytype, err := model.ParsePayType(*in.Paytype)
			if err != nil {
				return err
			}
			contract.Paytype = paytype
		}

		if in.Discount != nil {
			contract.Discount = *in.Discount
		}

		price, err := ApplyDiscount(contract.Total, contract.Discount)
		if err != nil {
			return err
		}
		contract.Price = price

		return tx.Model(&model.Contract{}).Where("id = ?", contract.ID).
			Updates(map[string]any{
				"client_id": contract.ClientID,
				"discount":  contract.Discount,
				"paytype":   contract.Paytype,
				"total":     contract.Total,
				"price":     contract.Price,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	if len(in.Products) > 0 {
		s.afterMutation(ctx, in.Products)
	}
	return s.Get(contract.ID)
}

// Delete removes the contract and its line items. Units already taken
// stay taken: removal is not a compensating transaction.
func (s *ContractService) Delete(ctx context.Context, id string) error {
	contract, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&model.ContractItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Contract{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		if err := s.events.ContractDeleted(ctx, contract); err != nil {
			log.Printf("contract deleted event: %v", err)
		}
	}
	return nil
}

// afterMutation refreshes the cached count of every touched product.
// Best effort: the database row is the source of truth.
func (s *ContractService) afterMutation(ctx context.Context, productIDs []string) {
	if s.cache == nil {
		return
	}
	seen := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		var prod model.Product
		if err := s.db.First(&prod, "id = ?", id).Error; err != nil {
			continue
		}
		if err := s.cache.Refresh(ctx, prod.ID, prod.Count); err != nil {
			log.Printf("stock cache refresh %s: %v", prod.ID, err)
		}
	}
}
