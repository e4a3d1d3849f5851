package seeder

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mondaymerch/merch-api/internal/database"
	"github.com/mondaymerch/merch-api/internal/entity"
)

// seedTime keeps seeded rows deterministic; listing order then falls back to
// the id tiebreak.
var seedTime = time.Date(2024, 12, 13, 10, 0, 0, 0, time.UTC)

// Seeder loads the fixed example rows. Referential ids (categories 1-3,
// products 1-4, users 1-2, orders 1-2) assume a freshly migrated schema with
// autoincrement starting at 1.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// All seeds every table in dependency order.
func (s *Seeder) All(ctx context.Context) error {
	if err := s.Categories(ctx); err != nil {
		return err
	}
	if err := s.Products(ctx); err != nil {
		return err
	}
	if err := s.Users(ctx); err != nil {
		return err
	}
	if err := s.Orders(ctx); err != nil {
		return err
	}
	return s.OrderItems(ctx)
}

// Categories seeds the three example categories if the table is empty.
func (s *Seeder) Categories(ctx context.Context) error {
	samples := []entity.Category{
		{Name: "Apparel", Description: ptr("T-shirts, hoodies, and clothing"), CreatedAt: seedTime},
		{Name: "Packaging", Description: ptr("Boxes, Add-ons, Bags, and others"), CreatedAt: seedTime},
		{Name: "Drinkware", Description: ptr("Mugs, bottles, and cups"), CreatedAt: seedTime},
	}
	return s.insertIfEmpty(ctx, (*entity.Category)(nil), &samples, "categories")
}

// Products seeds the four example products, keyed on SKU for idempotency.
func (s *Seeder) Products(ctx context.Context) error {
	samples := []entity.Product{
		{
			CategoryID:    2,
			Name:          "Tissue Paper Sticker",
			Description:   ptr("A sticker designed to seal the tissue paper for elegant packaging. Fully customizable to match your brand vision. Sticker only – tissue paper not included."),
			PricePerUnit:  decimal.RequireFromString("0.43"),
			StockQuantity: 100,
			SKU:           ptr("MM-STKR-001"),
			CreatedAt:     seedTime,
		},
		{
			CategoryID:    1,
			Name:          "Premium Hoodie",
			Description:   ptr("A comfortable, Premium Hoodie with a modern fit. Ideal for casual branding with a twist. We will help create the perfect design for your brand."),
			PricePerUnit:  decimal.RequireFromString("47.85"),
			StockQuantity: 50,
			SKU:           ptr("MM-HOOD-001"),
			CreatedAt:     seedTime,
		},
		{
			CategoryID:    1,
			Name:          "Trucker Cap",
			Description:   ptr("This Premium Trucker Cap is a must-have for a casual vibe. Ready for your logo or design, it is perfect for showing off your swag. Our team is ready to assist in making your design vision a reality."),
			PricePerUnit:  decimal.RequireFromString("9.95"),
			StockQuantity: 75,
			SKU:           ptr("MM-CAP-001"),
			CreatedAt:     seedTime,
		},
		{
			CategoryID:    3,
			Name:          "Ceramic Compact Mug",
			Description:   ptr("A ceramic compact Mug made for sipping your favorite drinks. It is a great canvas for showcasing your brand. Our team is ready to help you bring your ideas to life."),
			PricePerUnit:  decimal.RequireFromString("6.32"),
			StockQuantity: 200,
			SKU:           ptr("MM-MUG-001"),
			CreatedAt:     seedTime,
		},
	}

	for i := range samples {
		_, err := s.db.NewInsert().Model(&samples[i]).
			On("CONFLICT (sku) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	s.logger.Info("seeded products", zap.Int("count", len(samples)))
	return nil
}

// Users seeds the two example accounts, keyed on email for idempotency.
func (s *Seeder) Users(ctx context.Context) error {
	samples := []entity.User{
		{
			Email:        "john.doe@example.com",
			PasswordHash: "$2b$10$hashedpassword123",
			FirstName:    ptr("John"),
			LastName:     ptr("Doe"),
			CompanyName:  ptr("TechCorp B.V."),
			Phone:        ptr("+31-555-0100"),
			CreatedAt:    seedTime,
		},
		{
			Email:        "jane.smith@example.com",
			PasswordHash: "$2b$10$hashedpassword456",
			FirstName:    ptr("Jane"),
			LastName:     ptr("Smith"),
			CompanyName:  ptr("StartupXYZ"),
			Phone:        ptr("+31-555-0200"),
			CreatedAt:    seedTime,
		},
	}

	for i := range samples {
		_, err := s.db.NewInsert().Model(&samples[i]).
			On("CONFLICT (email) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	s.logger.Info("seeded users", zap.Int("count", len(samples)))
	return nil
}

// Orders seeds the two example orders, keyed on order number.
func (s *Seeder) Orders(ctx context.Context) error {
	firstDelivery := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	secondDelivery := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	samples := []entity.Order{
		{
			UserID:               1,
			OrderNumber:          ptr("MM-2024-0001"),
			OrderDate:            seedTime,
			Status:               "completed",
			PackingDecision:      ptr(entity.DecisionNow),
			PackingType:          ptr("bulk"),
			WarehousingDecision:  ptr(entity.DecisionNow),
			WarehousingOption:    ptr("no_warehousing"),
			ShippingDecision:     ptr(entity.DecisionNow),
			ShippingOption:       ptr("one_location"),
			ShippingAddressLine1: ptr("Paralellweg 123"),
			ShippingCity:         ptr("Amsterdam"),
			ShippingPostalCode:   ptr("2678NT"),
			ShippingCountry:      ptr("NL"),
			ProjectType:          ptr("employee_gifts"),
			RequiredDeliveryDate: &firstDelivery,
			ContactCompany:       ptr("TechCorp B.V."),
			ContactFirstName:     ptr("John"),
			ContactLastName:      ptr("Doe"),
			ContactEmail:         ptr("john.doe@example.com"),
			ContactPhone:         ptr("+31-555-0100"),
			Subtotal:             decimal.RequireFromString("7.18"),
			TotalAmount:          decimal.RequireFromString("7.18"),
		},
		{
			UserID:               2,
			OrderNumber:          ptr("MM-2024-0002"),
			OrderDate:            seedTime,
			Status:               "pending",
			PackingDecision:      ptr(entity.DecisionLater),
			WarehousingDecision:  ptr(entity.DecisionLater),
			ShippingDecision:     ptr(entity.DecisionLater),
			ShippingAddressLine1: ptr("Kirklaan 2"),
			ShippingCity:         ptr("Den Haag"),
			ShippingPostalCode:   ptr("7890PL"),
			ShippingCountry:      ptr("NL"),
			ProjectType:          ptr("onboarding"),
			RequiredDeliveryDate: &secondDelivery,
			ContactCompany:       ptr("StartupXYZ"),
			ContactFirstName:     ptr("Jane"),
			ContactLastName:      ptr("Smith"),
			ContactEmail:         ptr("jane.smith@example.com"),
			ContactPhone:         ptr("+31-555-0200"),
			Subtotal:             decimal.RequireFromString("10.38"),
			TotalAmount:          decimal.RequireFromString("10.38"),
		},
	}

	for i := range samples {
		_, err := s.db.NewInsert().Model(&samples[i]).
			On("CONFLICT (order_number) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	s.logger.Info("seeded orders", zap.Int("count", len(samples)))
	return nil
}

// OrderItems seeds the four example lines if the table is empty.
func (s *Seeder) OrderItems(ctx context.Context) error {
	samples := []entity.OrderItem{
		{OrderID: 1, ProductID: 1, Quantity: 2, PriceAtPurchase: decimal.RequireFromString("0.43")},
		{OrderID: 1, ProductID: 4, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("6.32")},
		{OrderID: 2, ProductID: 3, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("9.95")},
		{OrderID: 2, ProductID: 1, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("0.43")},
	}
	return s.insertIfEmpty(ctx, (*entity.OrderItem)(nil), &samples, "order_items")
}

// insertIfEmpty bulk-inserts rows for tables without a natural unique key.
func (s *Seeder) insertIfEmpty(ctx context.Context, model any, rows any, table string) error {
	count, err := s.db.NewSelect().Model(model).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("seed skipped; table not empty", zap.String("table", table), zap.Int("rows", count))
		return nil
	}

	res, err := s.db.NewInsert().Model(rows).Exec(ctx)
	if err != nil {
		return err
	}
	inserted, _ := res.RowsAffected()
	s.logger.Info("seeded table", zap.String("table", table), zap.Int64("rows", inserted))
	return nil
}

func ptr(s string) *string {
	return &s
}
