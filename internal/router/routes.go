package router

import (
	"github.com/pmadriaga/studorg/go-api-server/internal/auth"
	"github.com/pmadriaga/studorg/go-api-server/internal/config"
	"github.com/pmadriaga/studorg/go-api-server/internal/fee"
	"github.com/pmadriaga/studorg/go-api-server/internal/member"
	"github.com/pmadriaga/studorg/go-api-server/internal/meta"
	"github.com/pmadriaga/studorg/go-api-server/internal/organization"
	"github.com/pmadriaga/studorg/go-api-server/internal/report"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/database"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/middleware"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/token"
	"github.com/pmadriaga/studorg/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	orgRepository := organization.NewOrganizationRepository()
	feeRepository := fee.NewFeeRepository()
	reportRepository := report.NewReportRepository()
	accountRepository := auth.NewAccountRepository()
	userRepository := user.NewUserRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, accountRepository, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository)
	orgService := organization.NewOrganizationService(db.DB, orgRepository, memberRepository)
	feeService := fee.NewFeeService(db.DB, feeRepository)
	reportService := report.NewReportService(db.DB, reportRepository)
	userService := user.NewUserService(db.DB, memberRepository, userRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	orgHandler := organization.NewOrganizationHandler(orgService)
	feeHandler := fee.NewFeeHandler(feeService)
	reportHandler := report.NewReportHandler(reportService)
	userHandler := user.NewUserHandler(userService)

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Roster and finances are back-office surfaces: admin only.
	members := router.Group("/api/members")
	members.Use(middleware.JWT(tokenManager), middleware.RequireAdmin())
	{
		members.GET("", memberHandler.List)
		members.GET("/:studentNumber", memberHandler.Get)
		members.POST("", memberHandler.Create)
		members.PUT("/:studentNumber", memberHandler.Update)
		members.DELETE("/:studentNumber", memberHandler.Delete)
	}

	orgs := router.Group("/api/organizations")
	orgs.Use(middleware.JWT(tokenManager), middleware.RequireAdmin())
	{
		orgs.GET("", orgHandler.List)
		orgs.GET("/:orgId", orgHandler.Get)
		orgs.POST("", orgHandler.Create)
		orgs.PUT("/:orgId", orgHandler.Update)
		orgs.DELETE("/:orgId", orgHandler.Delete)

		orgs.GET("/:orgId/members", orgHandler.ListMemberships)
		orgs.POST("/:orgId/members", orgHandler.AddMembership)
		orgs.PUT("/:orgId/members/:studentNumber", orgHandler.UpdateMembership)
		orgs.DELETE("/:orgId/members/:studentNumber", orgHandler.RemoveMembership)
	}

	fees := router.Group("/api/fees")
	fees.Use(middleware.JWT(tokenManager), middleware.RequireAdmin())
	{
		fees.GET("", feeHandler.List)
		fees.GET("/:transactionId", feeHandler.Get)
		fees.POST("", feeHandler.Create)
		fees.PUT("/:transactionId", feeHandler.Update)
		fees.DELETE("/:transactionId", feeHandler.Delete)
	}

	reports := router.Group("/api/reports")
	reports.Use(middleware.JWT(tokenManager), middleware.RequireAdmin())
	{
		reports.GET("/1", reportHandler.OrganizationMembers)
		reports.GET("/2", reportHandler.UnpaidByStudent)
		reports.GET("/3", reportHandler.StudentUnpaidFees)
		reports.GET("/4", reportHandler.ExecutiveCommittee)
		reports.GET("/5", reportHandler.RoleHistory)
		reports.GET("/6", reportHandler.LatePayments)
		reports.GET("/7", reportHandler.StatusShares)
		reports.GET("/8", reportHandler.Alumni)
		reports.GET("/9", reportHandler.FeeTotals)
		reports.GET("/10", reportHandler.HighestDebt)
	}

	// Student-facing views; per-record access is enforced in the service.
	users := router.Group("/api/users")
	users.Use(middleware.JWT(tokenManager))
	{
		users.GET("/late-fees", userHandler.LateFees)
		users.GET("/:studentNumber", userHandler.Get)
	}
}
