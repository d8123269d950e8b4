package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"matchday/src/config"
	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			id, err := utils.CreateNewEvent(&body, userId)
			if err != nil {
				log.Printf("error creating event: %s", err.Error())
				if errors.Is(err, types.ErrForbidden) {
					ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id})
		}).
		GET("/events", func(ctx *gin.Context) {
			var query types.EventQueryFilters
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var events []models.Event
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				q := tx.Where("status = ?", types.EVENT_OPEN)
				if query.Location != "" {
					q = q.Where("location LIKE ?", "%"+query.Location+"%")
				}
				if query.From != "" {
					from, err := time.Parse(config.DATE_PARSE_FORMAT, query.From)
					if err != nil {
						return err
					}
					q = q.Where("date >= ?", from)
				}
				if query.To != "" {
					to, err := time.Parse(config.DATE_PARSE_FORMAT, query.To)
					if err != nil {
						return err
					}
					q = q.Where("date <= ?", to)
				}
				if query.Mine {
					q = q.Where("created_by = ?", ctx.GetUint("id"))
				}
				return q.Order("date asc").Limit(50).Find(&events).Error
			})
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			db := db.GetDb()
			if err := db.
				Model(&models.Event{}).
				Where(&models.Event{ID: params.ID}).
				First(&event).
				Error; err != nil {
				log.Printf("Error finding event %d: %s\n", params.ID, err.Error())
				err := errors.New("Event does not exist")
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		GET("/events/slug/:slug", func(ctx *gin.Context) {
			slugParam := ctx.Params.ByName("slug")
			var event models.Event
			db := db.GetDb()
			if err := db.
				Model(&models.Event{}).
				Where(&models.Event{Slug: slugParam}).
				First(&event).
				Error; err != nil {
				err := errors.New("Event does not exist")
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		GET("/events/:id/participants", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var event models.Event
			db := db.GetDb()
			if err := db.
				Select("id", "participants", "slots").
				Where(&models.Event{ID: params.ID}).
				First(&event).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event.Participants, "count": len(event.Participants)})
		}).
		PATCH("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				var event models.Event
				if err := tx.
					Where(&models.Event{ID: params.ID, CreatedBy: userId}).
					First(&event).
					Error; err != nil {
					return err
				}
				updates := models.Event{
					Title:          body.Title,
					Location:       body.Location,
					StartTime:      body.StartTime,
					EndTime:        body.EndTime,
					PricePerPlayer: body.PricePerPlayer,
					Slots:          body.Slots,
				}
				if body.About != "" {
					updates.About = &body.About
				}
				if body.Date != "" {
					date, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
					if err != nil {
						return err
					}
					updates.Date = date
				}
				return tx.
					Model(&models.Event{}).
					Where("id = ?", event.ID).
					Updates(&updates).
					Error
			}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PATCH("/events/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var event models.Event
			if err := db.
				Where(&models.Event{ID: params.ID, CreatedBy: userId}).
				First(&event).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if err := utils.UpdateEventStatus(params.ID, types.EVENT_CANCELED, types.EVENT_OPEN); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		POST("/events/:id/image", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var event models.Event
			if err := db.
				Where(&models.Event{ID: params.ID, CreatedBy: userId}).
				First(&event).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			file, _, err := ctx.Request.FormFile("image")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			defer file.Close()
			url, err := lib.UploadToCloudinary(file, "events")
			if err != nil {
				log.Printf("Error uploading event image: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.
				Model(&models.Event{}).
				Where("id = ?", event.ID).
				Update("image_url", url).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"url": url})
		})

	return g
}
