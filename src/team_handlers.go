package main

import (
	"errors"
	"log"
	"net/http"

	"matchday/src/db"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
)

func teamStatusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrTeamFull),
		errors.Is(err, types.ErrTeamSideTaken),
		errors.Is(err, types.ErrAlreadyOnTeam),
		errors.Is(err, types.ErrAlreadyPaid):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func teamHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events/:id/teams", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			id, err := utils.CreateTeam(params.ID, userId, &body)
			if err != nil {
				log.Printf("Error creating team for event %d: %s\n", params.ID, err.Error())
				ctx.JSON(teamStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id})
		}).
		GET("/events/:id/teams", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var teams []models.Team
			db := db.GetDb()
			if err := db.
				Where(&models.Team{EventID: params.ID}).
				Order("side asc").
				Find(&teams).
				Error; err != nil {
				log.Printf("Error retrieving teams for event %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": teams, "count": len(teams)})
		}).
		POST("/teams/:id/invites", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.TeamInviteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			if err := utils.InviteToTeam(params.ID, userId, body.UserID); err != nil {
				log.Printf("Error inviting user %d to team %d: %s\n", body.UserID, params.ID, err.Error())
				ctx.JSON(teamStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusCreated)
		}).
		POST("/teams/:id/accept", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			if err := utils.RespondToInvite(params.ID, userId, true); err != nil {
				ctx.JSON(teamStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusOK)
		}).
		POST("/teams/:id/decline", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			if err := utils.RespondToInvite(params.ID, userId, false); err != nil {
				ctx.JSON(teamStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusOK)
		})

	return g
}
