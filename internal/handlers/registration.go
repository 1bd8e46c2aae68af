package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/medicare-camp/camp-api/internal/models"
	"github.com/medicare-camp/camp-api/internal/notifier"
	"github.com/medicare-camp/camp-api/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	registrations *store.RegistrationStore
	notifier      notifier.Notifier
	logger        *zap.Logger
}

func NewRegistrationHandler(registrations *store.RegistrationStore, notifier notifier.Notifier, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations, notifier: notifier, logger: logger}
}

type JoinCampRequest struct {
	Body struct {
		CampID           string `json:"campId" required:"true" doc:"Identifier of the camp to join"`
		ParticipantEmail string `json:"participantEmail" required:"true" format:"email"`
		ParticipantName  string `json:"participantName"`
		Age              int    `json:"age" minimum:"0"`
		PhoneNumber      string `json:"phoneNumber"`
		Gender           string `json:"gender"`
		EmergencyContact string `json:"emergencyContact"`
	}
}

type RegistrationResponse struct {
	Body models.Registration
}

// HandleJoinCamp is the enrollment entry point: the camp id submitted as a
// string is validated here once, then the insert and the counter increment
// run as a single transaction in the store.
func (h *RegistrationHandler) HandleJoinCamp(ctx context.Context, input *JoinCampRequest) (*RegistrationResponse, error) {
	campID, err := parseID(input.Body.CampID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid campId: " + input.Body.CampID)
	}

	reg := models.Registration{
		ParticipantEmail: input.Body.ParticipantEmail,
		RegistrationFields: models.RegistrationFields{
			ParticipantName:  input.Body.ParticipantName,
			Age:              input.Body.Age,
			PhoneNumber:      input.Body.PhoneNumber,
			Gender:           input.Body.Gender,
			EmergencyContact: input.Body.EmergencyContact,
		},
	}

	created, err := h.registrations.JoinCamp(campID, reg)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Camp not found")
		}
		return nil, huma.Error500InternalServerError("Failed to join camp: " + err.Error())
	}

	if h.notifier != nil && created.Camp != nil {
		if err := h.notifier.NotifyEnrollment(*created.Camp, *created); err != nil {
			h.logger.Warn("enrollment notification failed", zap.Error(err))
		}
	}

	return &RegistrationResponse{Body: *created}, nil
}

type RegistrationListResponse struct {
	Body []models.Registration
}

func (h *RegistrationHandler) HandleManageCampRequest(ctx context.Context, input *OrganizerEmailRequest) (*RegistrationListResponse, error) {
	regs, err := h.registrations.ByCampOrganizer(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list camp requests: " + err.Error())
	}
	return &RegistrationListResponse{Body: regs}, nil
}

func (h *RegistrationHandler) HandleManageCampRequestCount(ctx context.Context, input *OrganizerEmailRequest) (*CountResponse, error) {
	count, err := h.registrations.CountByCampOrganizer(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count camp requests: " + err.Error())
	}
	res := &CountResponse{}
	res.Body.Result = count
	return res, nil
}

type UpdateConfirmationStatusRequest struct {
	ID   string `path:"id"`
	Body struct {
		Status string `json:"status" required:"true" enum:"pending,confirmed,canceled"`
	}
}

type UpdateConfirmationStatusResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleUpdateConfirmationStatus(ctx context.Context, input *UpdateConfirmationStatusRequest) (*UpdateConfirmationStatusResponse, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid registration id: " + input.ID)
	}

	status := models.ConfirmationStatus(input.Body.Status)
	if !status.Valid() {
		return nil, huma.Error422UnprocessableEntity("Unknown status value: " + input.Body.Status)
	}

	if err := h.registrations.SetStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Registration not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update status: " + err.Error())
	}

	res := &UpdateConfirmationStatusResponse{}
	res.Body.Message = "Confirmation status updated"
	return res, nil
}

type ParticipantEmailRequest struct {
	Email string `path:"email"`
}

func (h *RegistrationHandler) HandleMyRegisteredCamps(ctx context.Context, input *ParticipantEmailRequest) (*RegistrationListResponse, error) {
	regs, err := h.registrations.ByParticipant(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations: " + err.Error())
	}
	return &RegistrationListResponse{Body: regs}, nil
}

func (h *RegistrationHandler) HandleCountMyAddedCamp(ctx context.Context, input *ParticipantEmailRequest) (*CountResponse, error) {
	count, err := h.registrations.CountByParticipant(input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count registrations: " + err.Error())
	}
	res := &CountResponse{}
	res.Body.Result = count
	return res, nil
}
