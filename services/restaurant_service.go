package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

type RestaurantService struct{}

func NewRestaurantService() *RestaurantService { return &RestaurantService{} }

type RestaurantInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Currency    string `json:"currency"`
	LogoBase64  string `json:"logo_base64"` // optional data-URI, uploaded to S3
}

func (s *RestaurantService) Get(userID uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := config.DB.Where("user_id = ?", userID).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Upsert creates the user's restaurant on first save and updates it afterwards.
func (s *RestaurantService) Upsert(userID uint, in RestaurantInput) (*models.Restaurant, error) {
	var r models.Restaurant
	err := config.DB.Where("user_id = ?", userID).First(&r).Error
	if err != nil {
		r = models.Restaurant{UserID: userID}
	}

	r.Name = in.Name
	r.Description = in.Description
	r.Address = in.Address
	r.Phone = in.Phone
	if in.Currency != "" {
		r.Currency = in.Currency
	} else if r.Currency == "" {
		r.Currency = "USD"
	}

	if in.LogoBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.LogoBase64, "logos")
		if err != nil {
			return nil, err
		}
		r.LogoURL = url
	}

	if err := config.DB.Save(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
