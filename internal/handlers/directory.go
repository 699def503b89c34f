package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/founderhub/internal/directory"
)

func (h *Handlers) ListFounders(c *gin.Context) {
	var criteria directory.FounderCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter criteria"})
		return
	}

	h.founders.Apply(criteria)
	if page, ok := pageParam(c); ok {
		h.founders.SetPage(page)
	}

	result := h.founders.Current()
	c.JSON(http.StatusOK, gin.H{
		"founders":    result.Items,
		"page":        result.Number,
		"total_pages": result.TotalPages,
	})
}

func (h *Handlers) ListBusinesses(c *gin.Context) {
	var criteria directory.BusinessCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter criteria"})
		return
	}

	h.businesses.Apply(criteria)
	if page, ok := pageParam(c); ok {
		h.businesses.SetPage(page)
	}

	result := h.businesses.Current()
	c.JSON(http.StatusOK, gin.H{
		"businesses":  result.Items,
		"page":        result.Number,
		"total_pages": result.TotalPages,
	})
}

func (h *Handlers) DirectoryOptions(c *gin.Context) {
	users := h.store.Users()
	c.JSON(http.StatusOK, gin.H{
		"locations":      directory.Locations(users),
		"industries":     directory.Industries(users),
		"funding_series": directory.FundingSeriesOptions,
		"company_sizes":  directory.CompanySizeOptions,
		"looking_for":    directory.LookingForOptions,
	})
}

// pageParam reads the optional page query param. A missing or malformed
// value leaves the view on its current page.
func pageParam(c *gin.Context) (int, bool) {
	raw := c.Query("page")
	if raw == "" {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}
