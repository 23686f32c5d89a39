package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"
	"tsapi/src/db"
	"tsapi/src/lib"
	"tsapi/src/models"
	"tsapi/src/types"
	"tsapi/src/utils"

	awslib "tsapi/src/lib/aws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yeqown/go-qrcode"
)

const orderPageSize = 10

// ensureTicketCodeFile returns the local path of a generated ticket code,
// restoring it from S3 when the temp file has been cleaned up.
func ensureTicketCodeFile(filename string) (string, error) {
	filepath := path.Join(os.TempDir(), fmt.Sprintf("%s.jpeg", filename))
	if _, err := os.Stat(filepath); err == nil {
		return filepath, nil
	}
	if err := awslib.S3DownloadAsset(filename); err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath); err != nil {
		return "", err
	}
	return filepath, nil
}

func orderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/orders", func(ctx *gin.Context) {
			userID := ctx.GetUint("id")
			p := utils.GetPagination(ctx, orderPageSize)
			db := db.GetDb()

			var total int64
			if err := db.
				Model(&models.Order{}).
				Where(&models.Order{UserID: userID}).
				Count(&total).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			var orders []models.Order
			if err := db.
				Where(&models.Order{UserID: userID}).
				Order("created_at desc").
				Offset(p.Offset).
				Limit(p.PageSize).
				Preload("Tickets").
				Preload("Tickets.Journey.Route.Source").
				Preload("Tickets.Journey.Route.Destination").
				Find(&orders).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			rows := make([]gin.H, 0, len(orders))
			for i := range orders {
				o := &orders[i]
				tickets := make([]gin.H, 0, len(o.Tickets))
				for _, t := range o.Tickets {
					tickets = append(tickets, gin.H{
						"id":      t.ID,
						"cargo":   t.Cargo,
						"seat":    t.Seat,
						"journey": t.Journey.Route.CompletePath(),
					})
				}
				rows = append(rows, gin.H{
					"id":         o.ID,
					"created_at": o.CreatedAt,
					"tickets":    tickets,
				})
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":      rows,
				"count":     total,
				"page":      p.Page,
				"page_size": p.PageSize,
			})
		}).
		POST("/orders", func(ctx *gin.Context) {
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			order, err := utils.CreateOrder(&body, userID)
			if err != nil {
				respondDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": order})
		}).
		POST("/orders/:id/tickets/:ticketId/code", func(ctx *gin.Context) {
			var query struct {
				ShareLink bool `form:"share_link"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var params types.TicketCodeURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				log.Printf("Error in validating request: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			db := db.GetDb()
			var order models.Order
			if err := db.
				Where(&models.Order{ID: params.OrderID, UserID: userID}).
				First(&order).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}
			var ticket models.Ticket
			if err := db.
				Where(&models.Ticket{ID: params.TicketID, OrderID: order.ID}).
				First(&ticket).
				Error; err != nil {
				respondDomainError(ctx, err)
				return
			}

			filename := fmt.Sprintf("ticketcode_%d-%d", order.ID, ticket.ID)
			rd := lib.GetRedisClient()
			var cached string
			if rd != nil {
				content, err := rd.Get(context.Background(), filename).Result()
				if err != nil && !errors.Is(err, redis.Nil) {
					log.Printf("Error reading from cache: %s\n", err.Error())
					ctx.Status(http.StatusBadRequest)
					return
				}
				cached = content
			}
			if cached != "" {
				if query.ShareLink {
					ctx.JSON(http.StatusOK, gin.H{"url": cached})
					return
				}
				if filepath, err := ensureTicketCodeFile(filename); err == nil {
					ctx.FileAttachment(filepath, "ticket.jpeg")
					return
				}
				// stored object is gone; fall through and regenerate
			}

			rawData := map[string]any{
				"orderId":  order.ID,
				"ticketId": ticket.ID,
				"journey":  ticket.JourneyID,
				"cargo":    ticket.Cargo,
				"seat":     ticket.Seat,
			}
			rawBytes, _ := json.Marshal(rawData)
			qrc, err := qrcode.New(string(rawBytes))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filepath := path.Join(os.TempDir(), fmt.Sprintf("%s.jpeg", filename))
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			url, err := awslib.S3UploadAsset(filename, filepath, "image/jpeg")
			if err != nil {
				log.Printf("Error uploading asset to S3 bucket: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if rd != nil {
				rd.SetEx(context.Background(), filename, *url, 2*time.Hour)
			}
			if query.ShareLink {
				ctx.JSON(http.StatusOK, gin.H{"url": *url})
				return
			}
			ctx.FileAttachment(filepath, "ticket.jpeg")
		})
	return g
}
