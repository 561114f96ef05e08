package services

import (
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ExpenseService struct{}

func NewExpenseService() *ExpenseService { return &ExpenseService{} }

type ExpenseInput struct {
	CategoryID  *uint     `json:"category_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" binding:"required"`
	IncurredAt  time.Time `json:"incurred_at"`
}

func (s *ExpenseService) List(restaurantID uint, from, to *time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	q := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("incurred_at DESC")
	if from != nil && to != nil {
		q = q.Where("incurred_at >= ? AND incurred_at < ?", *from, *to)
	}
	err := q.Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Create(restaurantID uint, in ExpenseInput) (*models.Expense, error) {
	incurred := in.IncurredAt
	if incurred.IsZero() {
		incurred = time.Now()
	}
	e := models.Expense{
		RestaurantID: restaurantID,
		CategoryID:   in.CategoryID,
		Description:  in.Description,
		Amount:       in.Amount,
		IncurredAt:   incurred,
	}
	if err := config.DB.Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseService) Update(restaurantID, expenseID uint, in ExpenseInput) (*models.Expense, error) {
	var e models.Expense
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", expenseID, restaurantID).
		First(&e).Error; err != nil {
		return nil, err
	}
	e.CategoryID = in.CategoryID
	e.Description = in.Description
	e.Amount = in.Amount
	if !in.IncurredAt.IsZero() {
		e.IncurredAt = in.IncurredAt
	}
	if err := config.DB.Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseService) Delete(restaurantID, expenseID uint) error {
	return config.DB.
		Where("id = ? AND restaurant_id = ?", expenseID, restaurantID).
		Delete(&models.Expense{}).Error
}

// MonthTotal sums expenses for the calendar month containing day.
func (s *ExpenseService) MonthTotal(restaurantID uint, day time.Time) (float64, error) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 1, 0)
	rows, err := s.List(restaurantID, &start, &end)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range rows {
		total += e.Amount
	}
	return utils.RoundCurrency(total), nil
}
