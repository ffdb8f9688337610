package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/scheduling-of-care/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		DisplayName:        name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		BudgetAlerts:       true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessToken, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "scheduling-of-care",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aCareRecipientExistsWithName(name string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	clientModel := &model.ClientModel{
		ID:                clientID,
		UserID:            t.currentUserID,
		Name:              name,
		MedicalConditions: pq.StringArray{},
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(clientModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndBudget(name, budget string) error {
	annualBudget, err := decimal.NewFromString(budget)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", budget, err)
	}

	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CareCategoryModel{
		ID:           categoryID,
		ClientID:     t.currentClientID,
		Name:         name,
		Color:        "#6366F1",
		AnnualBudget: annualBudget,
		DisplayOrder: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aSubcategoryExistsWithNameAndBudget(name, budget string) error {
	annualBudget, err := decimal.NewFromString(budget)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", budget, err)
	}

	subcategoryID := uuid.New()
	t.currentSubcategoryID = subcategoryID

	now := time.Now().UTC()
	subcategoryModel := &model.SubcategoryModel{
		ID:           subcategoryID,
		CategoryID:   t.currentCategoryID,
		Name:         name,
		AnnualBudget: annualBudget,
		DisplayOrder: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(subcategoryModel).Error
}

// aCareTaskExistsRecurring seeds a recurring task spanning three weeks of the
// current year (Feb 1 through Feb 21), so a weekly task has exactly three
// occurrences.
func (t *testContext) aCareTaskExistsRecurring(name string, intervalDays int) error {
	year := time.Now().UTC().Year()
	start := time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.February, 21, 0, 0, 0, 0, time.UTC)
	return t.createCareTask(name, intervalDays, start, &end)
}

func (t *testContext) aOneOffCareTaskExists(name string) error {
	year := time.Now().UTC().Year()
	start := time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
	return t.createCareTask(name, 0, start, nil)
}

func (t *testContext) createCareTask(name string, intervalDays int, start time.Time, end *time.Time) error {
	taskID := uuid.New()
	t.currentTaskID = taskID
	t.taskStartDate = start

	now := time.Now().UTC()
	taskModel := &model.CareTaskModel{
		ID:                     taskID,
		ClientID:               t.currentClientID,
		CategoryID:             t.currentCategoryID,
		Name:                   name,
		TaskType:               "GENERAL",
		RecurrenceIntervalDays: intervalDays,
		StartDate:              start,
		EndDate:                end,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	return t.db.DbConn.Create(taskModel).Error
}

func (t *testContext) aPendingExecutionExistsForTheTask() error {
	executionID := uuid.New()
	t.currentExecutionID = executionID

	now := time.Now().UTC()
	executionModel := &model.ExecutionModel{
		ID:                executionID,
		CareTaskID:        t.currentTaskID,
		ScheduledDate:     t.taskStartDate,
		Status:            "TODO",
		QuantityPurchased: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(executionModel).Error
}

func (t *testContext) aCompletedExecutionExistsForTheTaskWithCost(cost string) error {
	actualCost, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost %q: %w", cost, err)
	}

	executionID := uuid.New()
	t.currentExecutionID = executionID

	now := time.Now().UTC()
	executionDate := t.taskStartDate
	executionModel := &model.ExecutionModel{
		ID:                executionID,
		CareTaskID:        t.currentTaskID,
		ScheduledDate:     t.taskStartDate,
		ExecutionDate:     &executionDate,
		Status:            "DONE",
		QuantityPurchased: 1,
		ActualCost:        &actualCost,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(executionModel).Error
}
