package api

import (
	"net/http"

	accountHandler "outreach-server/internal/accounts/handler"
	authHandler "outreach-server/internal/auth/handler"
	campaignHandler "outreach-server/internal/campaigns/handler"
	domainHandler "outreach-server/internal/domains/handler"
	inboxHandler "outreach-server/internal/inbox/handler"
	settingsHandler "outreach-server/internal/settings/handler"
	webhookHandler "outreach-server/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	settingsHandler settingsHandler.Handler
	domainHandler   domainHandler.Handler
	accountHandler  accountHandler.Handler
	campaignHandler campaignHandler.Handler
	inboxHandler    inboxHandler.Handler
	webhookHandler  webhookHandler.Handler
}

func New(router *gin.RouterGroup,
	authHandler authHandler.Handler,
	settingsHandler settingsHandler.Handler,
	domainHandler domainHandler.Handler,
	accountHandler accountHandler.Handler,
	campaignHandler campaignHandler.Handler,
	inboxHandler inboxHandler.Handler,
	webhookHandler webhookHandler.Handler,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		settingsHandler: settingsHandler,
		domainHandler:   domainHandler,
		accountHandler:  accountHandler,
		campaignHandler: campaignHandler,
		inboxHandler:    inboxHandler,
		webhookHandler:  webhookHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	webhookGroup := a.router.Group("/webhooks")
	{
		webhookGroup.POST("/orders/create", a.webhookHandler.HandleOrderCreate)
		webhookGroup.POST("/app/uninstalled", a.webhookHandler.HandleAppUninstalled)
		webhookGroup.POST("/smartlead/reply", a.webhookHandler.HandleSmartleadReply)
	}

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.GET("/install", a.authHandler.HandleInstall)
		authGroup.GET("/callback", a.authHandler.HandleCallback)
		authGroup.GET("/gmail/callback", a.authHandler.HandleGmailCallback)
	}

	tenantGroup := apiGroup.Group("", a.authHandler.TenantMiddleware)
	{
		tenantGroup.GET("/settings", a.settingsHandler.HandleGetSettings)
		tenantGroup.PUT("/settings", a.settingsHandler.HandleUpdateSettings)
		tenantGroup.GET("/email-settings", a.settingsHandler.HandleGetEmailSettings)
		tenantGroup.PUT("/email-settings", a.settingsHandler.HandleUpdateEmailSettings)
		tenantGroup.GET("/email-settings/gmail/connect", a.authHandler.HandleGmailConnect)

		domainGroup := tenantGroup.Group("/domains")
		domainGroup.POST("/search", a.domainHandler.HandleSearch)
		domainGroup.POST("/purchase", a.domainHandler.HandlePurchase)
		domainGroup.POST("/provision-dns", a.domainHandler.HandleProvisionDNS)
		domainGroup.POST("/verify-dns", a.domainHandler.HandleVerifyDNS)
		domainGroup.GET("/list", a.domainHandler.HandleList)
		domainGroup.GET("/status/:id", a.domainHandler.HandleStatus)

		accountGroup := tenantGroup.Group("/accounts")
		accountGroup.GET("", a.accountHandler.HandleList)
		accountGroup.POST("", a.accountHandler.HandleCreate)
		accountGroup.POST("/:id/warmup", a.accountHandler.HandleWarmup)
		accountGroup.POST("/:id/assign", a.accountHandler.HandleAssign)

		tenantGroup.GET("/campaigns", a.campaignHandler.HandleList)
		tenantGroup.POST("/campaigns", a.campaignHandler.HandleCreate)

		inboxGroup := tenantGroup.Group("/inbox")
		inboxGroup.GET("", a.inboxHandler.HandleList)
		inboxGroup.GET("/:id", a.inboxHandler.HandleGet)
		inboxGroup.PUT("/:id/read", a.inboxHandler.HandleMarkRead)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
