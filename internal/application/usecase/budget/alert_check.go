// Package budget computes budget breakdowns, projections, and alerts.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// AlertCheckService re-evaluates one category after a spend change and
// queues a notification email when utilization reaches warning or critical.
// It satisfies the alert-checker hook of the execution lifecycle.
type AlertCheckService struct {
	repo                Repository
	categoryRepo        adapter.CategoryRepository
	clientRepo          adapter.ClientRepository
	userRepo            adapter.UserRepository
	notificationService adapter.NotificationService
	cache               BreakdownCache
	thresholds          valueobject.AlertThresholds
}

// NewAlertCheckService creates a new AlertCheckService instance.
// notificationService and cache may be nil; the check then only invalidates
// what it can and sends nothing.
func NewAlertCheckService(
	repo Repository,
	categoryRepo adapter.CategoryRepository,
	clientRepo adapter.ClientRepository,
	userRepo adapter.UserRepository,
	notificationService adapter.NotificationService,
	cache BreakdownCache,
	thresholds valueobject.AlertThresholds,
) *AlertCheckService {
	return &AlertCheckService{
		repo:                repo,
		categoryRepo:        categoryRepo,
		clientRepo:          clientRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		cache:               cache,
		thresholds:          thresholds,
	}
}

// CheckCategory recomputes the category's utilization and queues an alert
// email if a threshold is crossed. Spend changed, so the client's cached
// breakdown is always invalidated first.
func (s *AlertCheckService) CheckCategory(ctx context.Context, userID, clientID, categoryID uuid.UUID) error {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, clientID); err != nil {
			return fmt.Errorf("failed to invalidate breakdown cache: %w", err)
		}
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}

	spend, err := s.repo.FindSpendByCategoryID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load spend records: %w", err)
	}
	spent := decimal.Zero
	for _, record := range spend {
		spent = spent.Add(record.Amount)
	}

	status := Evaluate(spent, category.AnnualBudget, s.thresholds)
	if status.Level != AlertLevelWarning && status.Level != AlertLevelCritical {
		return nil
	}

	if s.notificationService == nil {
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if !user.BudgetAlerts || !user.EmailNotifications {
		return nil
	}

	clientName := ""
	if client, err := s.clientRepo.FindByID(ctx, clientID); err == nil {
		clientName = client.Name
	}

	utilizationPct := int(utilization(category.AnnualBudget, spent))

	return s.notificationService.QueueBudgetAlertEmail(ctx, adapter.QueueBudgetAlertInput{
		UserID:       user.ID.String(),
		UserEmail:    user.Email,
		UserName:     user.DisplayName,
		ClientName:   clientName,
		CategoryName: category.Name,
		Severity:     string(status.Level),
		Utilization:  utilizationPct,
		SpentAmount:  spent.StringFixed(2),
		BudgetAmount: category.AnnualBudget.StringFixed(2),
	})
}
