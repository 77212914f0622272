package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"notes_system/internal/domain"     // Importing domain models
	"notes_system/internal/middleware" // Current user lookup
	"notes_system/internal/service"    // Business logic
	"notes_system/internal/validate"   // Binding error translation

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListNotesHandler returns the caller's notes
func ListNotesHandler(notes *service.NoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.CurrentUser(c) // Get caller from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		list, err := notes.List(c.Request.Context(), owner)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list) // Return the notes
	}
}

// CreateNoteHandler stores a new note owned by the caller
func CreateNoteHandler(notes *service.NoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.CurrentUser(c) // Get caller from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var fields domain.NoteFields // Bind JSON request to struct
		if err := c.ShouldBindJSON(&fields); err != nil {
			respondError(c, validate.FromBindError(err))
			return
		}
		note, err := notes.Create(c.Request.Context(), owner, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, note) // Return the created note
	}
}

// UpdateNoteHandler overwrites a note owned by the caller
func UpdateNoteHandler(notes *service.NoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.CurrentUser(c) // Get caller from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := noteID(c) // Parse note ID from path
		if !ok {
			respondError(c, domain.ErrNotFound)
			return
		}
		var fields domain.NoteFields // Bind JSON request to struct
		if err := c.ShouldBindJSON(&fields); err != nil {
			// Ownership is checked before the body is reported on
			if _, getErr := notes.Get(c.Request.Context(), owner, id); getErr != nil {
				respondError(c, getErr)
				return
			}
			respondError(c, validate.FromBindError(err))
			return
		}
		note, err := notes.Update(c.Request.Context(), owner, id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, note) // Return the updated note
	}
}

// DeleteNoteHandler removes a note owned by the caller
func DeleteNoteHandler(notes *service.NoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.CurrentUser(c) // Get caller from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := noteID(c) // Parse note ID from path
		if !ok {
			respondError(c, domain.ErrNotFound)
			return
		}
		if err := notes.Delete(c.Request.Context(), owner, id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent) // No content on success
	}
}

// noteID parses the :id path parameter; non-numeric IDs name no note
func noteID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
