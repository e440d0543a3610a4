package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"residconnect/internal/application/message/usecases"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/constants"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

type MessageHandler struct {
	createMessageUC usecases.CreateMessageExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	logger          logger.Interface
}

func NewMessageHandler(
	createMessageUC usecases.CreateMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
) *MessageHandler {
	return &MessageHandler{
		createMessageUC: createMessageUC,
		listMessagesUC:  listMessagesUC,
		logger:          logger.NewLogger(),
	}
}

// CreateMessage handles POST /messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create message", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Titre, message et catégorie requis")
		return
	}
	if err := req.Validate(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	view, err := h.createMessageUC.Execute(c.Request.Context(), usecases.CreateMessageCommand{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		UserID:   c.GetString(constants.ContextKeyUserID),
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMessageDTO(*view), "Message publié")
}

// ListMessages handles GET /messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	views, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		Category: c.Query("category"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMessageDTOs(views))
}
