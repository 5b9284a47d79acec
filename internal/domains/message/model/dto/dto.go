package dto

import (
	"github.com/google/uuid"

	"fete/internal/domains/message/model"
	"fete/shared/constant"
	"fete/shared/timezone"
)

type RecordMessageRequest struct {
	SenderType string `json:"sender_type" validate:"required,oneof=customer vendor"`
	Message    string `json:"message"     validate:"required,max=2000"`
}

func (r *RecordMessageRequest) ToModel(bookingID string) model.Message {
	return model.Message{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		SenderType: r.SenderType,
		Message:    r.Message,
		CreatedAt:  timezone.Now(),
	}
}

type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	SenderType string `json:"sender_type"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.SenderType = model.SenderType
	r.Message = model.Message
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message) {
	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
