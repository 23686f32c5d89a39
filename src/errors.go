package main

import (
	"errors"
	"log"
	"net/http"
	"tsapi/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondDomainError maps domain failures to client responses: field-level
// validation and duplicate keys become 400s, missing rows 404s, anything
// else a generic 500 after the transaction has already rolled back.
func respondDomainError(ctx *gin.Context, err error) {
	var fieldErr *types.FieldError
	if errors.As(err, &fieldErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a record with these values already exists"})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	log.Printf("Could not complete request: %s\n", err.Error())
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
}
