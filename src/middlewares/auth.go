package middlewares

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"tsapi/src/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects unauthenticated requests before any domain logic
// runs and stores the caller's identity on the context.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims, err := utils.ParseJWT(reqToken)
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.Set("id", uint(uid))
	ctx.Set("email", claims.Username)
	ctx.Set("role", claims.Role)
}

// AdminRequired must run after AuthMiddleware.
func AdminRequired(ctx *gin.Context) {
	if ctx.GetString("role") != "admin" {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
}
