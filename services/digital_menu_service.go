package services

import (
	"errors"
	"fmt"
	"os"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type DigitalMenuService struct {
	hub *MenuHub
}

func NewDigitalMenuService(hub *MenuHub) *DigitalMenuService {
	return &DigitalMenuService{hub: hub}
}

// ---------- Menu CRUD ----------

func (s *DigitalMenuService) List(restaurantID uint) ([]models.DigitalMenu, error) {
	var menus []models.DigitalMenu
	err := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&menus).Error
	return menus, err
}

func (s *DigitalMenuService) Get(restaurantID, menuID uint) (*models.DigitalMenu, error) {
	var menu models.DigitalMenu
	err := config.DB.
		Preload("Categories.Items").
		Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *DigitalMenuService) Create(restaurantID uint, name string) (*models.DigitalMenu, error) {
	menu := models.DigitalMenu{
		RestaurantID: restaurantID,
		Name:         name,
		Status:       models.MenuStatusDraft,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *DigitalMenuService) Update(restaurantID, menuID uint, name, status string) (*models.DigitalMenu, error) {
	var menu models.DigitalMenu
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		First(&menu).Error; err != nil {
		return nil, err
	}
	if name != "" {
		menu.Name = name
	}
	if status != "" {
		menu.Status = status
	}
	if err := config.DB.Save(&menu).Error; err != nil {
		return nil, err
	}
	s.notify(&menu)
	return &menu, nil
}

func (s *DigitalMenuService) Delete(restaurantID, menuID uint) error {
	menu, err := s.Get(restaurantID, menuID)
	if err != nil {
		return err
	}
	for _, mc := range menu.Categories {
		if err := config.DB.Where("digital_menu_category_id = ?", mc.ID).
			Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
	}
	if err := config.DB.Where("digital_menu_id = ?", menu.ID).
		Delete(&models.DigitalMenuCategory{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.DigitalMenu{}, menu.ID).Error
}

// ---------- Category bindings ----------

// AddCategory binds a global category to the menu. The unique index on
// (digital_menu_id, category_id) rejects duplicate bindings at the store.
func (s *DigitalMenuService) AddCategory(restaurantID, menuID, categoryID uint, displayOrder int) (*models.DigitalMenuCategory, error) {
	if _, err := s.Get(restaurantID, menuID); err != nil {
		return nil, err
	}
	var cat models.Category
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		First(&cat).Error; err != nil {
		return nil, err
	}

	mc := models.DigitalMenuCategory{
		DigitalMenuID: menuID,
		CategoryID:    categoryID,
		DisplayOrder:  displayOrder,
	}
	if err := config.DB.Create(&mc).Error; err != nil {
		return nil, err
	}
	return &mc, nil
}

func (s *DigitalMenuService) UpdateCategoryOrder(restaurantID, menuID, bindingID uint, displayOrder int) error {
	if _, err := s.Get(restaurantID, menuID); err != nil {
		return err
	}
	return config.DB.Model(&models.DigitalMenuCategory{}).
		Where("id = ? AND digital_menu_id = ?", bindingID, menuID).
		Update("display_order", displayOrder).Error
}

// RemoveCategory is forbidden while the binding still has menu items.
func (s *DigitalMenuService) RemoveCategory(restaurantID, menuID, bindingID uint) error {
	if _, err := s.Get(restaurantID, menuID); err != nil {
		return err
	}
	var count int64
	config.DB.Model(&models.MenuItem{}).
		Where("digital_menu_category_id = ?", bindingID).
		Count(&count)
	if count > 0 {
		return errors.New("category still has menu items")
	}
	return config.DB.
		Where("id = ? AND digital_menu_id = ?", bindingID, menuID).
		Delete(&models.DigitalMenuCategory{}).Error
}

// ---------- Menu items ----------

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageBase64 string  `json:"image_base64"`
	ImageURL    string  `json:"image_url"`
}

func (s *DigitalMenuService) bindingForMenu(menuID, bindingID uint) (*models.DigitalMenuCategory, error) {
	var mc models.DigitalMenuCategory
	err := config.DB.
		Where("id = ? AND digital_menu_id = ?", bindingID, menuID).
		First(&mc).Error
	if err != nil {
		return nil, err
	}
	return &mc, nil
}

func (s *DigitalMenuService) AddItem(restaurantID, menuID, bindingID uint, in MenuItemInput) (*models.MenuItem, error) {
	menu, err := s.Get(restaurantID, menuID)
	if err != nil {
		return nil, err
	}
	if _, err := s.bindingForMenu(menuID, bindingID); err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	imageURL := in.ImageURL
	if in.ImageBase64 != "" {
		imageURL, err = utils.UploadBase64ImageToS3(in.ImageBase64, "menu-items")
		if err != nil {
			return nil, err
		}
	}

	item := models.MenuItem{
		DigitalMenuCategoryID: bindingID,
		Name:                  in.Name,
		Description:           in.Description,
		Price:                 in.Price,
		ImageURL:              imageURL,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	s.notify(menu)
	return &item, nil
}

func (s *DigitalMenuService) UpdateItem(restaurantID, menuID, itemID uint, in MenuItemInput) (*models.MenuItem, error) {
	menu, err := s.Get(restaurantID, menuID)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	var item models.MenuItem
	if err := config.DB.
		Joins("JOIN digital_menu_categories ON digital_menu_categories.id = menu_items.digital_menu_category_id").
		Where("menu_items.id = ? AND digital_menu_categories.digital_menu_id = ?", itemID, menuID).
		First(&item).Error; err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	if in.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.ImageBase64, "menu-items")
		if err != nil {
			return nil, err
		}
		item.ImageURL = url
	} else if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}

	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	s.notify(menu)
	return &item, nil
}

func (s *DigitalMenuService) DeleteItem(restaurantID, menuID, itemID uint) error {
	menu, err := s.Get(restaurantID, menuID)
	if err != nil {
		return err
	}
	res := config.DB.
		Where("id = ? AND digital_menu_category_id IN (?)", itemID,
			config.DB.Model(&models.DigitalMenuCategory{}).
				Select("id").Where("digital_menu_id = ?", menuID)).
		Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	s.notify(menu)
	return nil
}

// ---------- Public rendering ----------

type RenderedMenu struct {
	Menu   models.DigitalMenu    `json:"menu"`
	Config models.TemplateConfig `json:"config"`
	Groups []MenuGroup           `json:"groups"`
}

// RenderBySlug loads an active menu for the public page: flattens its items into
// view rows carrying the category name and display order, groups them, and
// resolves the template config so the renderer never sees an unset style key.
func (s *DigitalMenuService) RenderBySlug(slug string) (*RenderedMenu, error) {
	var menu models.DigitalMenu
	err := config.DB.
		Preload("Categories.Items").
		Where("slug = ? AND status = ?", slug, models.MenuStatusActive).
		First(&menu).Error
	if err != nil {
		return nil, err
	}

	rows, err := s.flattenItems(&menu)
	if err != nil {
		return nil, err
	}

	cfg := models.TemplateConfig{}
	if menu.TemplateID != nil {
		var tpl models.MenuTemplate
		if err := config.DB.First(&tpl, *menu.TemplateID).Error; err == nil {
			cfg = tpl.Config
		}
	}

	return &RenderedMenu{
		Menu:   menu,
		Config: models.ResolveTemplateConfig(cfg),
		Groups: GroupMenuItems(rows),
	}, nil
}

// flattenItems denormalizes category name and display order onto each item row.
// Order on the binding is the source of truth; item rows only carry it for the
// duration of a render.
func (s *DigitalMenuService) flattenItems(menu *models.DigitalMenu) ([]MenuItemView, error) {
	catIDs := make([]uint, 0, len(menu.Categories))
	for _, mc := range menu.Categories {
		catIDs = append(catIDs, mc.CategoryID)
	}
	nameOf := map[uint]string{}
	if len(catIDs) > 0 {
		var cats []models.Category
		if err := config.DB.Where("id IN ?", catIDs).Find(&cats).Error; err != nil {
			return nil, err
		}
		for _, c := range cats {
			nameOf[c.ID] = c.Name
		}
	}

	var rows []MenuItemView
	for _, mc := range menu.Categories {
		for _, it := range mc.Items {
			rows = append(rows, MenuItemView{
				ID:           it.ID,
				Name:         it.Name,
				Description:  it.Description,
				Price:        it.Price,
				ImageURL:     it.ImageURL,
				CategoryID:   mc.ID,
				CategoryName: nameOf[mc.CategoryID],
				OrderIndex:   mc.DisplayOrder,
			})
		}
	}
	return rows, nil
}

// ---------- Apply template ----------

// ApplyTemplate is a destructive resync: the menu's current items and category
// bindings are deleted, then recreated from the template snapshot with its
// display_order values. No merge or diff is attempted.
func (s *DigitalMenuService) ApplyTemplate(restaurantID, menuID, templateID uint) (*models.DigitalMenu, error) {
	menu, err := s.Get(restaurantID, menuID)
	if err != nil {
		return nil, err
	}

	var tpl models.MenuTemplate
	if err := config.DB.
		Preload("Categories.Items").
		Where("id = ? AND restaurant_id = ?", templateID, restaurantID).
		First(&tpl).Error; err != nil {
		return nil, err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, mc := range menu.Categories {
			if err := tx.Where("digital_menu_category_id = ?", mc.ID).
				Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("digital_menu_id = ?", menu.ID).
			Delete(&models.DigitalMenuCategory{}).Error; err != nil {
			return err
		}

		for _, tc := range tpl.Categories {
			cat, err := s.findOrCreateCategory(tx, restaurantID, tc.Name, tc.DisplayOrder)
			if err != nil {
				return err
			}
			mc := models.DigitalMenuCategory{
				DigitalMenuID: menu.ID,
				CategoryID:    cat.ID,
				DisplayOrder:  tc.DisplayOrder,
			}
			if err := tx.Create(&mc).Error; err != nil {
				return err
			}
			for _, ti := range tc.Items {
				item := models.MenuItem{
					DigitalMenuCategoryID: mc.ID,
					Name:                  ti.Name,
					Description:           ti.Description,
					Price:                 ti.Price,
					ImageURL:              ti.ImageURL,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&models.DigitalMenu{}).
			Where("id = ?", menu.ID).
			Update("template_id", tpl.ID).Error
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Get(restaurantID, menuID)
	if err != nil {
		return nil, err
	}
	s.notify(updated)
	return updated, nil
}

func (s *DigitalMenuService) findOrCreateCategory(tx *gorm.DB, restaurantID uint, name string, displayOrder int) (*models.Category, error) {
	var cat models.Category
	err := tx.Where("restaurant_id = ? AND name = ? AND type = ?",
		restaurantID, name, models.CategoryTypeMenuItem).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	cat = models.Category{
		RestaurantID: restaurantID,
		Name:         name,
		Type:         models.CategoryTypeMenuItem,
		DisplayOrder: displayOrder,
	}
	if err := tx.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// ---------- Publish ----------

// Publish flips the menu to active, assigns a slug on first publish, uploads a QR
// code for the public link, and mails the owner.
func (s *DigitalMenuService) Publish(userID, restaurantID, menuID uint) (*models.DigitalMenu, error) {
	var menu models.DigitalMenu
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		First(&menu).Error; err != nil {
		return nil, err
	}

	if menu.Slug == "" {
		menu.Slug = utils.MenuSlug(menu.Name)
	}
	menu.Status = models.MenuStatusActive

	publicURL := fmt.Sprintf("%s/menus/%s", os.Getenv("PUBLIC_BASE_URL"), menu.Slug)
	png, err := utils.GenerateQRCodePNG(publicURL)
	if err != nil {
		return nil, err
	}
	qrURL, err := utils.UploadBytesToS3(fmt.Sprintf("qr-codes/%s.png", menu.Slug), png, "image/png")
	if err != nil {
		return nil, err
	}
	menu.QRCodeURL = qrURL

	if err := config.DB.Save(&menu).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		// best effort; a mail failure doesn't unpublish the menu
		_ = utils.SendMenuPublishedEmail(user.Email, menu.Name, publicURL, qrURL)
	}

	s.notify(&menu)
	return &menu, nil
}

func (s *DigitalMenuService) notify(menu *models.DigitalMenu) {
	if s.hub == nil || menu.Slug == "" {
		return
	}
	s.hub.BroadcastMenuUpdated(menu.Slug)
}
