package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/billfold/internal/clock"
	expensedomain "github.com/smallbiznis/billfold/internal/expense/domain"
	"github.com/smallbiznis/billfold/internal/validate"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) expensedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("expense.service"),
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req expensedomain.CreateExpenseRequest) (expensedomain.Expense, error) {
	switch req.Category {
	case expensedomain.CategoryTravel, expensedomain.CategoryMeals, expensedomain.CategorySupplies,
		expensedomain.CategorySoftware, expensedomain.CategoryEquipment, expensedomain.CategoryOther:
	default:
		return expensedomain.Expense{}, expensedomain.ErrInvalidCategory
	}
	if !validate.Amount(req.Amount) {
		return expensedomain.Expense{}, expensedomain.ErrInvalidAmount
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return expensedomain.Expense{}, expensedomain.ErrInvalidDate
	}

	now := s.clock.Now()
	expense := expensedomain.Expense{
		ID:         s.genID.Generate(),
		Category:   req.Category,
		Vendor:     strings.TrimSpace(req.Vendor),
		Amount:     req.Amount,
		Currency:   req.Currency,
		Date:       date,
		Notes:      req.Notes,
		HasReceipt: req.HasReceipt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return expensedomain.Expense{}, err
	}

	s.log.Info("expense created",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", string(expense.Category)),
		zap.Float64("amount", expense.Amount),
	)
	return expense, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (expensedomain.Expense, error) {
	expense, err := s.load(ctx, id)
	if err != nil {
		return expensedomain.Expense{}, err
	}
	return *expense, nil
}

func (s *Service) List(ctx context.Context, category expensedomain.Category) (expensedomain.ListExpenseResponse, error) {
	query := s.db.WithContext(ctx).Model(&expensedomain.Expense{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var expenses []expensedomain.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		return expensedomain.ListExpenseResponse{}, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(decimal.NewFromFloat(expense.Amount))
	}
	return expensedomain.ListExpenseResponse{
		Expenses: expenses,
		Total:    total.Round(2).InexactFloat64(),
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	expense, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&expensedomain.Expense{}, "id = ?", expense.ID).Error
}

func (s *Service) load(ctx context.Context, id string) (*expensedomain.Expense, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return nil, expensedomain.ErrInvalidExpenseID
	}

	var expense expensedomain.Expense
	err = s.db.WithContext(ctx).First(&expense, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, expensedomain.ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}
