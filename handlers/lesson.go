package handlers

import (
	"net/http"
	"strconv"

	"coursestore/services/catalog"
	"coursestore/services/ledger"
	"coursestore/utils"

	"github.com/gin-gonic/gin"
)

// LessonHandler serves the catalog-facing endpoints.
type LessonHandler struct {
	Catalog catalog.CatalogService
	Ledger  ledger.SeatLedger
}

func NewLessonHandler(catalogSvc catalog.CatalogService, seatLedger ledger.SeatLedger) *LessonHandler {
	return &LessonHandler{Catalog: catalogSvc, Ledger: seatLedger}
}

// ListLessonsHandler handles GET /lessons.
func (h *LessonHandler) ListLessonsHandler(c *gin.Context) {
	lessons, err := h.Catalog.ListLessons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// UpdateLessonSeatsHandler handles PUT /lessons/:id, the administrative
// absolute seat-count update.
func (h *LessonHandler) UpdateLessonSeatsHandler(c *gin.Context) {
	lessonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "lesson id must be an integer")
		return
	}

	var input struct {
		AvailableSeats *int `json:"availableSeats"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "malformed JSON body")
		return
	}
	if input.AvailableSeats == nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "availableSeats required")
		return
	}

	if err := h.Ledger.SetSeats(c.Request.Context(), lessonID, *input.AvailableSeats); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Lesson updated successfully",
		"lessonId":          lessonID,
		"newAvailableSeats": *input.AvailableSeats,
	})
}

// SearchLessonsHandler handles GET /search?q=.
func (h *LessonHandler) SearchLessonsHandler(c *gin.Context) {
	query := c.Query("q")

	results, err := h.Catalog.SearchLessons(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// ReseedCatalogHandler handles POST /admin/reseed, the administrative
// catalog reset.
func (h *LessonHandler) ReseedCatalogHandler(c *gin.Context) {
	inserted, err := h.Catalog.ForceReseed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Catalog reseeded successfully",
		"insertedCount": inserted,
	})
}
