package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/medicare-camp/camp-api/internal/listing"
	"github.com/medicare-camp/camp-api/internal/models"
	"github.com/medicare-camp/camp-api/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserHandler struct {
	users  *store.UserStore
	logger *zap.Logger
}

func NewUserHandler(users *store.UserStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type UpsertUserRequest struct {
	Body struct {
		Name     string `json:"name" required:"true"`
		Email    string `json:"email" required:"true" format:"email"`
		Role     string `json:"role,omitempty" enum:"participant,organizer,admin" doc:"Defaults to participant"`
		PhotoURL string `json:"photoURL,omitempty"`
	}
}

type UserResponse struct {
	Body models.User
}

func (h *UserHandler) HandleUpsertUser(ctx context.Context, input *UpsertUserRequest) (*UserResponse, error) {
	role := models.Role(input.Body.Role)
	if input.Body.Role != "" && !role.Valid() {
		return nil, huma.Error422UnprocessableEntity("Unknown role value: " + input.Body.Role)
	}

	user, err := h.users.UpsertByEmail(models.User{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Role:     role,
		PhotoURL: input.Body.PhotoURL,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to upsert user: " + err.Error())
	}
	return &UserResponse{Body: *user}, nil
}

type ListUsersRequest struct {
	SearchByName  string `query:"searchByName" doc:"Case-insensitive substring match on name"`
	SearchByEmail string `query:"searchByEmail" doc:"Case-insensitive substring match on email"`
	CurrentPage   string `query:"currentPage" doc:"Zero-based page number"`
	PerPage       string `query:"numberOfUsersPerPage" doc:"Page size"`
}

type UserListResponse struct {
	Body []models.User
}

func (h *UserHandler) HandleListUsers(ctx context.Context, input *ListUsersRequest) (*UserListResponse, error) {
	page := listing.ParsePage(input.CurrentPage, input.PerPage)
	users, err := h.users.List(
		listing.UserSearch(input.SearchByName, input.SearchByEmail),
		listing.Newest(),
		page.Scope,
	)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}
	return &UserListResponse{Body: users}, nil
}

type UserCountRequest struct {
	SearchByName  string `query:"searchByName"`
	SearchByEmail string `query:"searchByEmail"`
}

func (h *UserHandler) HandleUserCount(ctx context.Context, input *UserCountRequest) (*CountResponse, error) {
	count, err := h.users.Count(listing.UserSearch(input.SearchByName, input.SearchByEmail))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count users: " + err.Error())
	}
	res := &CountResponse{}
	res.Body.Result = count
	return res, nil
}

type UpdateUserRoleRequest struct {
	Email string `path:"email"`
	Body  struct {
		Role string `json:"role" required:"true" enum:"participant,organizer,admin"`
	}
}

type UpdateUserRoleResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *UserHandler) HandleUpdateUserRole(ctx context.Context, input *UpdateUserRoleRequest) (*UpdateUserRoleResponse, error) {
	role := models.Role(input.Body.Role)
	if !role.Valid() {
		return nil, huma.Error422UnprocessableEntity("Unknown role value: " + input.Body.Role)
	}

	if err := h.users.UpdateRole(input.Email, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update role: " + err.Error())
	}

	h.logger.Info("user role updated",
		zap.String("email", input.Email),
		zap.String("role", input.Body.Role))

	res := &UpdateUserRoleResponse{}
	res.Body.Message = "Role updated"
	return res, nil
}

type DeleteUserRequest struct {
	ID string `path:"id"`
}

func (h *UserHandler) HandleDeleteUser(ctx context.Context, input *DeleteUserRequest) (*struct{}, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid user id: " + input.ID)
	}

	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete user: " + err.Error())
	}
	return nil, nil
}
