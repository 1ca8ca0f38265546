package controllers

import (
	"github.com/gin-gonic/gin"

	"tire-shop/middleware"
	"tire-shop/models"
	"tire-shop/services"
	"tire-shop/utils"
)

const (
	msgCartAddFailed   = "Не удалось добавить товар в корзину"
	msgCartUnavailable = "Корзина недоступна"
)

type CartController struct {
	cartService *services.CartService
	notifier    *utils.Notifier
}

func NewCartController(cartService *services.CartService, notifier *utils.Notifier) *CartController {
	return &CartController{cartService: cartService, notifier: notifier}
}

type addToCartRequest struct {
	ID int `json:"id" binding:"required,gt=0"`
}

// @Summary Add product to cart
// @Description Add-or-increment by product id; unknown ids are a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body addToCartRequest true "Product id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body"})
		return
	}

	added, count, err := ctrl.cartService.AddToCart(c.Request.Context(), middleware.CartID(c), req.ID)
	if err != nil {
		if added {
			// the line is already committed; only the count refresh
			// failed, so don't report the add as lost
			c.JSON(200, gin.H{
				"success": true,
				"message": services.MsgAddedToCart,
				"data":    gin.H{"added": true},
			})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: msgCartAddFailed})
		return
	}

	message := ""
	if added {
		message = services.MsgAddedToCart
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data":    gin.H{"added": added, "count": count},
	})
}

// @Summary Get cart contents
// @Description Full cart line list with the total item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cartID := middleware.CartID(c)

	lines, err := ctrl.cartService.Lines(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: msgCartUnavailable})
		return
	}

	count := 0
	for i := range lines {
		count += lines[i].Quantity
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    gin.H{"items": lines, "count": count},
	})
}

// @Summary Get cart item count
// @Description Sum of all line quantities, 0 for a fresh cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/count [get]
func (ctrl *CartController) GetCartCount(c *gin.Context) {
	count, err := ctrl.cartService.TotalItemCount(c.Request.Context(), middleware.CartID(c))
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: msgCartUnavailable})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": gin.H{"count": count}})
}

// @Summary List live notifications
// @Description This cart's confirmation toasts that have not yet expired
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/notifications [get]
func (ctrl *CartController) GetNotifications(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": ctrl.notifier.Active(middleware.CartID(c))})
}
