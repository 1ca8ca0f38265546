package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tire-shop/models"
	"tire-shop/repositories"
	"tire-shop/services"
	"tire-shop/utils"
)

const (
	msgCatalogLoadFailed = "Ошибка загрузки товаров. Пожалуйста, обновите страницу."
	msgNoProductsFound   = "Товары не найдены"
	msgProductNotFound   = "Товар не найден"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func productListCacheKey(f models.Filter) string {
	return fmt.Sprintf("products_list_c%s_b%s_p%d", f.Category, f.Brand, f.MaxPrice)
}

func productCard(p *models.Product) gin.H {
	return gin.H{
		"id":              p.ID,
		"name":            p.Name,
		"brand":           p.Brand,
		"category":        p.Category,
		"price":           p.Price.Int(),
		"price_formatted": utils.FormatPrice(p.Price.Int()),
		"size":            p.Size(),
		"image":           p.FirstImage(),
		"detail_url":      fmt.Sprintf("/products/%d", p.ID),
	}
}

// @Summary List products
// @Description List products filtered by category, brand and price ceiling
// @Tags Products
// @Produce json
// @Param category query string false "Exact category match"
// @Param brand query string false "Exact brand match"
// @Param max_price query int false "Inclusive price ceiling"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))
	if maxPrice < 0 {
		maxPrice = 0
	}

	filter := models.Filter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MaxPrice: maxPrice,
	}

	cacheKey := productListCacheKey(filter)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.catalogService.ListProducts(filter)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: msgCatalogLoadFailed})
		return
	}

	cards := []gin.H{}
	for i := range products {
		cards = append(cards, productCard(&products[i]))
	}

	message := "Products retrieved"
	if len(cards) == 0 {
		message = msgNoProductsFound
	}

	response := gin.H{
		"success": true,
		"message": message,
		"data":    cards,
		"total":   len(cards),
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary List brand filter options
// @Description Distinct non-empty brands in first-seen catalog order
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /brands [get]
func (ctrl *CatalogController) GetBrands(c *gin.Context) {
	brands, err := ctrl.catalogService.Brands()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: msgCatalogLoadFailed})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Brands retrieved", "data": brands})
}

// @Summary Get product by ID
// @Description Full product detail with formatted price and spec block
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		// invalid id never touches the catalog
		c.JSON(404, models.ErrorResponse{Success: false, Message: msgProductNotFound})
		return
	}

	product, err := ctrl.catalogService.GetProductByID(id)
	if err == nil {
		c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": productDetail(product)})
		return
	}

	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(404, models.ErrorResponse{Success: false, Message: msgProductNotFound})
		return
	}

	c.JSON(500, models.ErrorResponse{Success: false, Message: msgCatalogLoadFailed})
}

func productDetail(p *models.Product) gin.H {
	specs := gin.H{
		"brand":      p.Brand,
		"model":      p.Model,
		"size":       p.Size(),
		"load_index": p.LoadIndex.String(),
		"category":   p.Category,
	}
	if p.Subcategory != "" {
		specs["subcategory"] = p.Subcategory
	}

	return gin.H{
		"id":              p.ID,
		"name":            p.Name,
		"price":           p.Price.Int(),
		"price_formatted": utils.FormatPrice(p.Price.Int()),
		"images":          p.Images,
		"description":     p.Description,
		"specs":           specs,
	}
}
