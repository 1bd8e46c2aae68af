package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/medicare-camp/camp-api/internal/listing"
	"github.com/medicare-camp/camp-api/internal/models"
	"github.com/medicare-camp/camp-api/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Top-N size for the popular and previous camp listings.
const featuredCampLimit = 8

type CampHandler struct {
	camps  *store.CampStore
	logger *zap.Logger
}

func NewCampHandler(camps *store.CampStore, logger *zap.Logger) *CampHandler {
	return &CampHandler{camps: camps, logger: logger}
}

type CampListResponse struct {
	Body []models.Camp
}

func (h *CampHandler) HandlePopularCamps(ctx context.Context, input *struct{}) (*CampListResponse, error) {
	camps, err := h.camps.Popular(featuredCampLimit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list popular camps: " + err.Error())
	}
	return &CampListResponse{Body: camps}, nil
}

func (h *CampHandler) HandlePreviousCamps(ctx context.Context, input *struct{}) (*CampListResponse, error) {
	camps, err := h.camps.Previous(time.Now(), featuredCampLimit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list previous camps: " + err.Error())
	}
	return &CampListResponse{Body: camps}, nil
}

type AllCampsRequest struct {
	Search         string `query:"search" doc:"Case-insensitive substring match on camp name"`
	SearchLocation string `query:"searchLocation" doc:"Case-insensitive substring match on camp location"`
	SortData       string `query:"sortData" enum:"ascending,descending,sortByParticipant" doc:"Sort order; omit for newest first"`
	CurrentPage    string `query:"currentPage" doc:"Zero-based page number"`
	PerPage        string `query:"numberOfCampPerPage" doc:"Page size"`
}

func (h *CampHandler) HandleAllCamps(ctx context.Context, input *AllCampsRequest) (*CampListResponse, error) {
	sort, err := listing.CampSort(input.SortData)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Unknown sortData value: " + input.SortData)
	}

	page := listing.ParsePage(input.CurrentPage, input.PerPage)
	camps, err := h.camps.List(
		listing.CampSearch(input.Search, input.SearchLocation),
		listing.Upcoming(time.Now()),
		sort,
		page.Scope,
	)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list camps: " + err.Error())
	}
	return &CampListResponse{Body: camps}, nil
}

type TotalCampNumberRequest struct {
	Search         string `query:"search"`
	SearchLocation string `query:"searchLocation"`
}

type TotalCampNumberResponse struct {
	Body struct {
		TotalCamp int64 `json:"totalCamp"`
	}
}

func (h *CampHandler) HandleTotalCampNumber(ctx context.Context, input *TotalCampNumberRequest) (*TotalCampNumberResponse, error) {
	total, err := h.camps.Count(
		listing.CampSearch(input.Search, input.SearchLocation),
		listing.Upcoming(time.Now()),
	)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count camps: " + err.Error())
	}
	res := &TotalCampNumberResponse{}
	res.Body.TotalCamp = total
	return res, nil
}

type CampDetailsRequest struct {
	ID string `path:"id"`
}

type CampResponse struct {
	Body models.Camp
}

func (h *CampHandler) HandleViewCampDetails(ctx context.Context, input *CampDetailsRequest) (*CampResponse, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid camp id: " + input.ID)
	}

	camp, err := h.camps.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Camp not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load camp: " + err.Error())
	}
	return &CampResponse{Body: *camp}, nil
}

// CampFields is the writable part of a camp, shared by create and update.
type CampFields struct {
	CampName       string    `json:"campName" required:"true" doc:"Camp name"`
	CampLocation   string    `json:"campLocation" required:"true" doc:"Camp location"`
	CampTime       time.Time `json:"campTime" required:"true" doc:"Scheduled time"`
	CampFee        float64   `json:"campFee" minimum:"0" doc:"Fee in the platform currency"`
	OrganizerEmail string    `json:"organizerEmail" required:"true" format:"email" doc:"Email of the organizing user"`
}

func (f CampFields) camp() models.Camp {
	return models.Camp{
		CampName:       f.CampName,
		CampLocation:   f.CampLocation,
		CampTime:       f.CampTime,
		CampFee:        f.CampFee,
		OrganizerEmail: f.OrganizerEmail,
	}
}

type AddCampRequest struct {
	Body CampFields
}

func (h *CampHandler) HandleAddCamp(ctx context.Context, input *AddCampRequest) (*CampResponse, error) {
	if input.Body.CampFee < 0 {
		return nil, huma.Error422UnprocessableEntity("campFee must not be negative")
	}

	camp := input.Body.camp()
	if err := h.camps.Create(&camp); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create camp: " + err.Error())
	}
	h.logger.Info("camp created",
		zap.Uint("campID", camp.ID),
		zap.String("organizerEmail", camp.OrganizerEmail))
	return &CampResponse{Body: camp}, nil
}

type UpdateCampRequest struct {
	ID   string `path:"id"`
	Body CampFields
}

func (h *CampHandler) HandleUpdateCamp(ctx context.Context, input *UpdateCampRequest) (*CampResponse, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid camp id: " + input.ID)
	}
	if input.Body.CampFee < 0 {
		return nil, huma.Error422UnprocessableEntity("campFee must not be negative")
	}

	camp, err := h.camps.Upsert(id, input.Body.camp())
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update camp: " + err.Error())
	}
	return &CampResponse{Body: *camp}, nil
}

type DeleteCampRequest struct {
	ID string `path:"id"`
}

func (h *CampHandler) HandleDeleteCamp(ctx context.Context, input *DeleteCampRequest) (*struct{}, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid camp id: " + input.ID)
	}

	if err := h.camps.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Camp not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete camp: " + err.Error())
	}
	return nil, nil
}

type OrganizerEmailRequest struct {
	Email string `path:"email"`
}

func (h *CampHandler) HandleMyAddedCamps(ctx context.Context, input *OrganizerEmailRequest) (*CampListResponse, error) {
	camps, err := h.camps.ByOrganizer(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list camps: " + err.Error())
	}
	return &CampListResponse{Body: camps}, nil
}

func (h *CampHandler) HandleMyAddedCampCount(ctx context.Context, input *OrganizerEmailRequest) (*CountResponse, error) {
	count, err := h.camps.CountByOrganizer(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count camps: " + err.Error())
	}
	res := &CountResponse{}
	res.Body.Result = count
	return res, nil
}
