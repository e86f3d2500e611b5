package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewInput struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
	AuthorName string `json:"author_name"`
}

// GET /products/:id/reviews
// Reviews come back newest first.
func GetProductReviews(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		reviews, err := catalog.Reviews(productID)
		if err != nil {
			respondStoreError(c, err, "Reviews not found")
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /products/:id/reviews
// Rating and comment are validated here at the boundary; a blank author is
// stored as "Anonymous". The product's rating and review_count are updated in
// the same transaction as the insert.
func AddProductReview(catalog Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := catalog.AddReview(productID, input.Rating, input.Comment, input.AuthorName)
		if err != nil {
			respondStoreError(c, err, "Product does not exist")
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}
