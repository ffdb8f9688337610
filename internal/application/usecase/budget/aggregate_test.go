package budget

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

func TestAggregateSubcategoryRollup(t *testing.T) {
	categoryID := uuid.New()
	subID := uuid.New()

	categories := []*entity.CareCategory{
		{
			ID:           categoryID,
			Name:         "Medical",
			AnnualBudget: decimal.NewFromInt(900),
			Subcategories: []*entity.Subcategory{
				{ID: subID, CategoryID: categoryID, Name: "Pharmacy", AnnualBudget: decimal.NewFromInt(150)},
			},
		},
	}
	spend := []SpendRecord{
		{CategoryID: categoryID, SubcategoryID: &subID, Amount: decimal.RequireFromString("12.50")},
	}

	breakdown := Aggregate(categories, spend)

	if len(breakdown) != 1 {
		t.Fatalf("expected 1 category, got %d", len(breakdown))
	}
	category := breakdown[0]
	if !category.ActualSpent.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("category actualSpent = %s, expected 12.50", category.ActualSpent)
	}
	if !category.Remaining.Equal(decimal.RequireFromString("887.50")) {
		t.Errorf("category remaining = %s, expected 887.50", category.Remaining)
	}
	if category.Utilization != 1 {
		t.Errorf("category utilization = %d, expected 1", category.Utilization)
	}

	if len(category.Subcategories) != 1 {
		t.Fatalf("expected 1 subcategory, got %d", len(category.Subcategories))
	}
	sub := category.Subcategories[0]
	if !sub.ActualSpent.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("subcategory actualSpent = %s, expected 12.50", sub.ActualSpent)
	}
	if !sub.Remaining.Equal(decimal.RequireFromString("137.50")) {
		t.Errorf("subcategory remaining = %s, expected 137.50", sub.Remaining)
	}
	if sub.Utilization != 8 {
		t.Errorf("subcategory utilization = %d, expected 8", sub.Utilization)
	}
}

func TestAggregateOverspentClampsRemaining(t *testing.T) {
	categoryID := uuid.New()
	categories := []*entity.CareCategory{
		{ID: categoryID, Name: "Transport", AnnualBudget: decimal.NewFromInt(100)},
	}
	spend := []SpendRecord{
		{CategoryID: categoryID, Amount: decimal.NewFromInt(250)},
	}

	breakdown := Aggregate(categories, spend)

	category := breakdown[0]
	if !category.Remaining.Equal(decimal.Zero) {
		t.Errorf("remaining = %s, expected 0 when overspent", category.Remaining)
	}
	// Utilization may exceed 100 but never goes negative.
	if category.Utilization != 250 {
		t.Errorf("utilization = %d, expected 250", category.Utilization)
	}
}

func TestAggregateZeroBudgetUtilization(t *testing.T) {
	categoryID := uuid.New()
	categories := []*entity.CareCategory{
		{ID: categoryID, Name: "Misc", AnnualBudget: decimal.Zero},
	}
	spend := []SpendRecord{
		{CategoryID: categoryID, Amount: decimal.NewFromInt(40)},
	}

	breakdown := Aggregate(categories, spend)

	if breakdown[0].Utilization != 0 {
		t.Errorf("utilization = %d, expected 0 for zero budget", breakdown[0].Utilization)
	}
	if !breakdown[0].Remaining.Equal(decimal.Zero) {
		t.Errorf("remaining = %s, expected 0 for zero budget", breakdown[0].Remaining)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	categoryID := uuid.New()
	subID := uuid.New()
	categories := []*entity.CareCategory{
		{
			ID:           categoryID,
			Name:         "Medical",
			AnnualBudget: decimal.NewFromInt(500),
			Subcategories: []*entity.Subcategory{
				{ID: subID, CategoryID: categoryID, Name: "Pharmacy", AnnualBudget: decimal.NewFromInt(200)},
			},
		},
	}
	spend := []SpendRecord{
		{CategoryID: categoryID, SubcategoryID: &subID, Amount: decimal.RequireFromString("33.33")},
		{CategoryID: categoryID, Amount: decimal.RequireFromString("66.67")},
	}

	first := Aggregate(categories, spend)
	second := Aggregate(categories, spend)

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregate should yield identical output for identical input")
	}
}

func TestAggregatePreservesInputOrder(t *testing.T) {
	a := &entity.CareCategory{ID: uuid.New(), Name: "B-second", AnnualBudget: decimal.NewFromInt(10)}
	b := &entity.CareCategory{ID: uuid.New(), Name: "A-first", AnnualBudget: decimal.NewFromInt(10)}

	breakdown := Aggregate([]*entity.CareCategory{a, b}, nil)

	if breakdown[0].Name != "B-second" || breakdown[1].Name != "A-first" {
		t.Error("aggregate must preserve category input order, not sort")
	}
}

func TestAggregateCategorySpendIncludesUnbucketedRows(t *testing.T) {
	categoryID := uuid.New()
	subID := uuid.New()
	categories := []*entity.CareCategory{
		{
			ID:           categoryID,
			Name:         "Medical",
			AnnualBudget: decimal.NewFromInt(300),
			Subcategories: []*entity.Subcategory{
				{ID: subID, CategoryID: categoryID, Name: "Pharmacy", AnnualBudget: decimal.NewFromInt(100)},
			},
		},
	}
	spend := []SpendRecord{
		{CategoryID: categoryID, SubcategoryID: &subID, Amount: decimal.NewFromInt(50)},
		{CategoryID: categoryID, Amount: decimal.NewFromInt(25)},
	}

	breakdown := Aggregate(categories, spend)

	if !breakdown[0].ActualSpent.Equal(decimal.NewFromInt(75)) {
		t.Errorf("category spend = %s, expected 75", breakdown[0].ActualSpent)
	}
	if !breakdown[0].Subcategories[0].ActualSpent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("subcategory spend = %s, expected 50", breakdown[0].Subcategories[0].ActualSpent)
	}
}
