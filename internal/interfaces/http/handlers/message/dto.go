package message

import (
	"time"

	"residconnect/internal/application/message/usecases"
	"residconnect/internal/shared/utils"
)

// CreateMessageRequest uses the feed's French field names as stored.
type CreateMessageRequest struct {
	Title    string `json:"titre" validate:"required,max=200"`
	Body     string `json:"message" validate:"required,max=5000"`
	Category string `json:"categorie" validate:"required,oneof=intervention evenement general"`
}

func (r *CreateMessageRequest) Validate() error {
	return utils.ValidateStruct(r)
}

type MessageDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"titre"`
	Body          string    `json:"message"`
	BodyHTML      string    `json:"body_html,omitempty"`
	Category      string    `json:"categorie"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	Residence     string    `json:"residence,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toMessageDTO(view usecases.MessageView) MessageDTO {
	return MessageDTO{
		ID:            view.ID,
		Title:         view.Title,
		Body:          view.Body,
		BodyHTML:      view.BodyHTML,
		Category:      view.Category,
		CreatedByName: view.CreatedByName,
		Residence:     view.Residence,
		CreatedAt:     view.CreatedAt,
	}
}

func toMessageDTOs(views []usecases.MessageView) []MessageDTO {
	dtos := make([]MessageDTO, len(views))
	for i, v := range views {
		dtos[i] = toMessageDTO(v)
	}
	return dtos
}
