package handler

import (
	"time"

	"learnhub/internal/delivery/api/response"
	"learnhub/internal/domain/entity"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// IdentityRequest is the body of the register and login endpoints.
type IdentityRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	IDNumber    string    `json:"id_number"`
}

// UserResponse is the public view of a user. The phone number is not exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IDNumber  string    `json:"id_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogRequest is the body of the category endpoints.
type CatalogRequest struct {
	Name string `json:"name" validate:"required"`
}

// SubCategoryRequest is the body of the sub-category endpoints.
type SubCategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SubCategoryResponse is the public view of a sub-category.
type SubCategoryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// PromptRequest is the body of POST /api/prompts. The user comes from the access token.
type PromptRequest struct {
	CategoryID    string `json:"category_id" validate:"required"`
	SubCategoryID string `json:"sub_category_id" validate:"required"`
	Prompt        string `json:"prompt" validate:"required"`
}

// LessonResponse is a stored prompt with its generated lesson.
type LessonResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CategoryID    string    `json:"category_id"`
	SubCategoryID string    `json:"sub_category_id"`
	Prompt        string    `json:"prompt"`
	Response      string    `json:"response"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r IdentityRequest) toInput() usecase.IdentityInput {
	return usecase.IdentityInput{Name: r.Name, Phone: r.Phone, IDNumber: r.IDNumber}
}

func newTokenResponse(out *usecase.TokenOutput) TokenResponse {
	return TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresAt:   out.ExpiresAt,
		UserID:      out.UserID,
		Name:        out.Name,
		IDNumber:    out.IDNumber,
	}
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, IDNumber: u.IDNumber, CreatedAt: u.CreatedAt}
}

func newCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func newSubCategoryResponse(s *entity.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID, CreatedAt: s.CreatedAt}
}

func newLessonResponse(l *entity.Lesson) LessonResponse {
	return LessonResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		CategoryID:    l.CategoryID,
		SubCategoryID: l.SubCategoryID,
		Prompt:        l.Prompt,
		Response:      l.Response,
		CreatedAt:     l.CreatedAt,
	}
}

// newPage converts a page of entities into its response form.
func newPage[E, R any](p *entity.Page[E], convert func(E) R) response.Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, convert(item))
	}

	return response.Page[R]{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

// bindPageQuery reads page, limit, sort and order from the query string.
// Out-of-range values are normalized by the usecase.
func bindPageQuery(c echo.Context) (entity.PageRequest, error) {
	var (
		page  entity.PageRequest
		order string
	)

	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		String("sort", &page.SortBy).
		String("order", &order).
		BindError()
	page.Order = entity.SortOrder(order)

	return page, err
}
