package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"residconnect/internal/application/auth/usecases"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/constants"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	registerUC   usecases.RegisterExecutor
	getProfileUC usecases.GetProfileExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	registerUC usecases.RegisterExecutor,
	getProfileUC usecases.GetProfileExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		registerUC:   registerUC,
		getProfileUC: getProfileUC,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Email, mot de passe et rôle requis")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   result.Token,
		User:    toUserDTO(result.User),
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Champs d'inscription invalides")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Unit:          req.Unit,
		Phone:         req.Phone,
		ResidenceName: req.ResidenceName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Token:   result.Token,
		User:    toUserDTO(result.User),
	})
}

// Me handles GET /tenant/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)
	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	info, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserDTO(*info))
}
