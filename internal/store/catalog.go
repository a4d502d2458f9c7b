package store

import (
	"context"

	"catalog-service/internal/models"

	"github.com/google/uuid"
)

// GetCategories returns every category in insertion order.
func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for id := 1; id < s.categoryIDCounter; id++ {
		if c, ok := s.categories[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

// GetCategory retrieves a category by id.
func (s *Store) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}

// CreateCategory inserts a category, assigning the next id.
func (s *Store) CreateCategory(ctx context.Context, insert *models.InsertCategory) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Category{
		CategoryID:       s.categoryIDCounter,
		CategoryName:     insert.CategoryName,
		ParentCategoryID: insert.ParentCategoryID,
	}
	s.categoryIDCounter++
	s.categories[c.CategoryID] = c
	return &c, nil
}

// GetProductImages returns all images attached to a product.
func (s *Store) GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]models.ProductImage, 0)
	for id := 1; id < s.imageIDCounter; id++ {
		if img, ok := s.images[id]; ok && img.ProductID == productID {
			images = append(images, img)
		}
	}
	return images, nil
}

// CreateProductImage attaches an image to a product.
func (s *Store) CreateProductImage(ctx context.Context, insert *models.InsertProductImage) (*models.ProductImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	img := models.ProductImage{
		ImageID:   s.imageIDCounter,
		ProductID: insert.ProductID,
		ImageURL:  insert.ImageURL,
		IsPrimary: insert.IsPrimary,
	}
	s.imageIDCounter++
	s.images[img.ImageID] = img
	return &img, nil
}

// GetProductAttributes returns all attributes attached to a product.
func (s *Store) GetProductAttributes(ctx context.Context, productID int) ([]models.ProductAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attributes := make([]models.ProductAttribute, 0)
	for id := 1; id < s.attributeIDCounter; id++ {
		if attr, ok := s.attributes[id]; ok && attr.ProductID == productID {
			attributes = append(attributes, attr)
		}
	}
	return attributes, nil
}

// CreateProductAttribute attaches a name/value attribute to a product.
func (s *Store) CreateProductAttribute(ctx context.Context, insert *models.InsertProductAttribute) (*models.ProductAttribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attr := models.ProductAttribute{
		AttributeID:    s.attributeIDCounter,
		ProductID:      insert.ProductID,
		AttributeName:  insert.AttributeName,
		AttributeValue: insert.AttributeValue,
	}
	s.attributeIDCounter++
	s.attributes[attr.AttributeID] = attr
	return &attr, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser inserts a user with a random uuid.
func (s *Store) CreateUser(ctx context.Context, insert *models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == insert.Username {
			return nil, ErrDuplicateUsername
		}
	}

	u := models.User{
		ID:       uuid.New().String(),
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[u.ID] = u
	return &u, nil
}
