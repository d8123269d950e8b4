package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"matchday/src/boot"
	"matchday/src/config"
	"matchday/src/controllers"
	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/middlewares"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api/v1"
)

var eventDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	d, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !d.Before(today)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			log.Println("server is under maintenance")
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, "server is under maintenance")
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	guest := apiv1.Group("/auth")
	guest.
		POST("/register", func(ctx *gin.Context) {
			id, status, err := controllers.AuthRegister(ctx)
			if err != nil {
				log.Printf("[AuthRegister] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"id": id})
		}).
		POST("/request_code", func(ctx *gin.Context) {
			status, err := controllers.AuthRequestCode(ctx)
			if err != nil {
				log.Printf("[AuthRequestCode] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(status)
		}).
		POST("/verify_code", func(ctx *gin.Context) {
			token, status, err := controllers.AuthVerifyCode(ctx)
			if err != nil {
				log.Printf("[AuthVerifyCode] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"token": token})
		})
	return guest
}

func initLogger() {
	cwd, _ := os.Getwd()
	logDir := path.Join(cwd, "logs")
	os.MkdirAll(logDir, 0o755)
	gin.ForceConsoleColor()

	f, _ := os.Create(path.Join(logDir, "api.log"))
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	if _, err := lib.CreateCronJob(utils.CompletePastEvents, time.Hour); err != nil {
		log.Printf("Error scheduling event housekeeping: %s\n", err.Error())
	} else if sched, err := lib.GetScheduler(); err == nil {
		sched.Start()
	}

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			if match {
				return true
			}
			match, _ = regexp.MatchString("app:mobile", origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", eventDateValidatorFunc)
	}

	router = maintenanceModeMiddleware(router)

	guestAuthRoutes(router)

	paystackWebhookRoute(router)

	payoutHandlers(router)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = eventHandlers(authorized)
		authorized = teamHandlers(authorized)
		authorized = transactionHandlers(authorized)
		authorized = verificationHandlers(authorized)

		authorized.
			GET("/me", func(ctx *gin.Context) {
				var user models.User
				userId := ctx.GetUint("id")
				db := db.GetDb()
				if err := db.
					Where(&models.User{ID: userId}).
					First(&user).
					Error; err != nil {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": user})
			}).
			POST("/me/image", func(ctx *gin.Context) {
				userId := ctx.GetUint("id")
				file, _, err := ctx.Request.FormFile("image")
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				defer file.Close()
				url, err := lib.UploadToCloudinary(file, "profiles")
				if err != nil {
					log.Printf("Error uploading profile image: %s\n", err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				db := db.GetDb()
				if err := db.Transaction(func(tx *gorm.DB) error {
					return tx.
						Model(&models.User{}).
						Where("id = ?", userId).
						Update("image_url", url).
						Error
				}); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"url": url})
			}).
			GET("/users/:id/transactions", func(ctx *gin.Context) {
				var params types.SimpleRequestParams
				if err := ctx.ShouldBindUri(&params); err != nil {
					ctx.Status(http.StatusBadRequest)
					return
				}
				role := ctx.GetString("role")
				if ctx.GetUint("id") != params.ID && role != types.ROLE_ADMIN {
					ctx.Status(http.StatusForbidden)
					return
				}
				var transactions []models.Transaction
				db := db.GetDb()
				if err := db.
					Where(&models.Transaction{UserID: params.ID}).
					Order("created_at desc").
					Find(&transactions).
					Error; err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": transactions, "count": len(transactions)})
			})
	}

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
