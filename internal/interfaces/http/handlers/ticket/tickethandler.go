package ticket

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"residconnect/internal/application/ticket/usecases"
	"residconnect/internal/shared/constants"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

const maxUploadSize = 10 << 20

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	listTenantUC    usecases.ListTenantTicketsExecutor
	listAssignedUC  usecases.ListAssignedTicketsExecutor
	getTicketUC     usecases.GetTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	uploadImageUC   usecases.UploadImageExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTenantUC usecases.ListTenantTicketsExecutor,
	listAssignedUC usecases.ListAssignedTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	uploadImageUC usecases.UploadImageExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTenantUC:   listTenantUC,
		listAssignedUC: listAssignedUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		uploadImageUC:  uploadImageUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tenant/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Titre, description et catégorie requis")
		return
	}

	email := c.GetString(constants.ContextKeyUserEmail)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(email))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTicketDTO(result.Ticket), "Ticket créé avec succès")
}

// ListTenantTickets handles GET /tenant/tickets
func (h *TicketHandler) ListTenantTickets(c *gin.Context) {
	email := c.GetString(constants.ContextKeyUserEmail)

	views, err := h.listTenantUC.Execute(c.Request.Context(), usecases.ListTenantTicketsQuery{
		TenantEmail: email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketDTOs(views))
}

// ListAssignedTickets handles GET /professional/tickets
func (h *TicketHandler) ListAssignedTickets(c *gin.Context) {
	email := c.GetString(constants.ContextKeyUserEmail)

	views, err := h.listAssignedUC.Execute(c.Request.Context(), usecases.ListAssignedTicketsQuery{
		AssigneeEmail: email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketDTOs(views))
}

// GetTicket handles GET /tenant/tickets/:id and GET /professional/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	view, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketDTO(*view))
}

// UpdateTicket handles PATCH /professional/tickets/:id. The request may
// be JSON or multipart; multipart is how an invoice PDF arrives.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	cmd := usecases.UpdateTicketCommand{TicketID: c.Param("id")}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := h.bindMultipartUpdate(c, &cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	} else {
		var req UpdateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for update ticket", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "Corps de requête invalide")
			return
		}
		cmd.Status = req.Status
		cmd.ResolutionNotes = req.ResolutionNotes
		cmd.AssignedTo = req.AssignedTo
	}

	view, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket mis à jour", toTicketDTO(*view))
}

// UploadImage handles POST /tenant/tickets/upload
func (h *TicketHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Aucun fichier fourni")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Lecture du fichier impossible")
		return
	}

	result, err := h.uploadImageUC.Execute(c.Request.Context(), usecases.UploadImageCommand{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UploadImageResponse{
		AttachmentID: result.AttachmentID,
		FileName:     result.FileName,
		FileSize:     result.FileSize,
	})
}

func (h *TicketHandler) bindMultipartUpdate(c *gin.Context, cmd *usecases.UpdateTicketCommand) error {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form for update ticket", "error", err)
		return err
	}

	if values := form.Value["status"]; len(values) > 0 {
		cmd.Status = &values[0]
	}
	if values := form.Value["resolution_notes"]; len(values) > 0 {
		cmd.ResolutionNotes = &values[0]
	}
	if values := form.Value["assigned_to"]; len(values) > 0 {
		cmd.AssignedTo = &values[0]
	}

	if files := form.File["invoice"]; len(files) > 0 {
		header := files[0]
		file, err := header.Open()
		if err != nil {
			return err
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
		if err != nil {
			return err
		}

		cmd.InvoiceData = data
		cmd.InvoiceType = header.Header.Get("Content-Type")
	}

	return nil
}
