package handler

import (
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/internal/utils"
	"github.com/campushq/hostelfees/services/fees/handler/http"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Handler coordinates all protocol handlers for the fees service
type Handler struct {
	feeHandler *http.FeeHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(feeHandler *http.FeeHandler, cfg *models.Config) *Handler {
	return &Handler{
		feeHandler: feeHandler,
		cfg:        cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RequireStaff rejects requests whose token does not carry the staff role.
// Verification, rebates and archival are staff-only operations.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("role").(string)
		if role != "staff" {
			return utils.ForbiddenResponse(c, "Staff role required")
		}
		return next(c)
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/fees", h.GetJWTMiddleware())

	// Staff-only ledger administration
	protected.POST("", h.feeHandler.CreateFee, RequireStaff)
	protected.GET("", h.feeHandler.ListFees, RequireStaff)
	protected.POST("/:id/verify", h.feeHandler.VerifyPayment, RequireStaff)
	protected.POST("/:id/rebate", h.feeHandler.ApplyRebate, RequireStaff)
	protected.POST("/:id/archive", h.feeHandler.ArchiveFee, RequireStaff)

	// Student-facing routes; handlers enforce ownership from token claims
	protected.POST("/payments", h.feeHandler.SubmitPayment)
	protected.GET("/students/:studentID", h.feeHandler.GetLedger)
	protected.GET("/:id/receipt", h.feeHandler.GetReceipt)
	protected.GET("/:id/receipts/:receiptID", h.feeHandler.GetReceipt)
}
